package utils

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// LoginUser is the authenticated caller extracted from JWT claims.
type LoginUser struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// GetUser reads the authenticated user from the gin context.
func GetUser(c *gin.Context) (*LoginUser, error) {
	currentUser, exists := c.Get("user")
	if !exists {
		return nil, CreateUnauthorizedError()
	}

	var claims map[string]interface{}
	switch v := currentUser.(type) {
	case jwt.MapClaims:
		claims = make(map[string]interface{})
		for key, val := range v {
			claims[key] = val
		}
	case map[string]interface{}:
		claims = v
	default:
		data, err := json.Marshal(currentUser)
		if err != nil {
			return nil, fmt.Errorf("serialize user claims: %v", err)
		}
		if err := json.Unmarshal(data, &claims); err != nil {
			return nil, fmt.Errorf("parse user claims: %v", err)
		}
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id")
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user role")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid username")
	}

	return &LoginUser{
		ID:       id,
		Role:     role,
		Username: username,
	}, nil
}

// EncodeShareToken builds the opaque token embedded in client-view links.
// Format: base64(projectId:unixMillis). The timestamp is informational
// only; links do not expire.
func EncodeShareToken(projectID string) string {
	raw := fmt.Sprintf("%s:%d", projectID, time.Now().UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeShareToken extracts the project id from a client-view token.
func DecodeShareToken(token string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid link")
	}

	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) == 0 || parts[0] == "" {
		return "", fmt.Errorf("invalid link")
	}

	return parts[0], nil
}
