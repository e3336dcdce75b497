package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole mirrors the role names issued inside JWT claims.
type UserRole string

const (
	UserRoleADMIN      UserRole = "ROLE_ADMIN"
	UserRoleSUPERVISOR UserRole = "ROLE_SUPERVISOR"
	UserRoleUSER       UserRole = "ROLE_USER"
)

// User is an operator account: admins run the office, supervisors run sites.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	FullName     string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Role         UserRole           `bson:"role" json:"role"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// ProjectCount is filled in for supervisor listings, never persisted.
	ProjectCount int64 `bson:"-" json:"projectCount"`
}

type (
	// LoginRequest is the /auth/login payload.
	LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	// LoginResponse is the /auth/login reply.
	LoginResponse struct {
		Token    string   `json:"token"`
		Role     UserRole `json:"role"`
		Username string   `json:"username"`
	}

	// CreateUserRequest creates an operator account.
	CreateUserRequest struct {
		Username string   `json:"username" binding:"required,min=2"`
		Password string   `json:"password" binding:"required,min=6"`
		FullName string   `json:"fullName"`
		Role     UserRole `json:"role" binding:"required"`
	}

	// UpdateUserRequest partially updates an operator account.
	UpdateUserRequest struct {
		FullName *string  `json:"fullName,omitempty"`
		Role     UserRole `json:"role,omitempty"`
		IsActive *bool    `json:"isActive,omitempty"`
	}
)
