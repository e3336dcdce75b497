package utils

import (
	"testing"

	"github.com/AzharuddinMalik/MAD-ERP/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("secret123", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: "site_super",
		Role:     models.UserRoleSUPERVISOR,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, "site_super", claims["username"])
	assert.Equal(t, string(models.UserRoleSUPERVISOR), claims["role"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name     string
		role     models.UserRole
		resource string
		action   string
		want     bool
	}{
		{"admin can do anything", models.UserRoleADMIN, "users", "delete", true},
		{"supervisor reads projects", models.UserRoleSUPERVISOR, "projects", "read", true},
		{"supervisor cannot create projects", models.UserRoleSUPERVISOR, "projects", "create", false},
		{"supervisor records measurements", models.UserRoleSUPERVISOR, "measurements", "create", true},
		{"supervisor manages labour", models.UserRoleSUPERVISOR, "labour", "delete", true},
		{"user reads projects", models.UserRoleUSER, "projects", "read", true},
		{"user cannot touch labour", models.UserRoleUSER, "labour", "read", false},
		{"unknown role gets nothing", models.UserRole("ROLE_GUEST"), "projects", "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.resource, tt.action))
		})
	}
}
