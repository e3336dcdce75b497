package utils

import (
	"fmt"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/config"
	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a plaintext password against a bcrypt hash.
func VerifyPassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// GenerateToken mints a signed JWT for a user. Valid for 30 days.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID.Hex(),
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("failed to sign token")
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates a JWT and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// HasPermission checks whether a role may perform an action on a resource.
func HasPermission(role models.UserRole, resource string, action string) bool {
	// Admins can do everything
	if role == models.UserRoleADMIN {
		return true
	}

	permissions := map[models.UserRole]map[string][]string{
		models.UserRoleSUPERVISOR: {
			"projects":     {"read"},
			"measurements": {"read", "create"},
			"labour":       {"read", "create", "update", "delete"},
			"updates":      {"create"},
		},
		models.UserRoleUSER: {
			"projects": {"read"},
		},
	}

	if resourceActions, exists := permissions[role]; exists {
		if actions, hasResource := resourceActions[resource]; hasResource {
			for _, a := range actions {
				if a == action {
					return true
				}
			}
		}
	}

	return false
}
