package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/models"
	"github.com/AzharuddinMalik/MAD-ERP/repository"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Login verifies credentials and issues a JWT.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data: " + err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := repository.Collection(repository.UsersCollection).
		FindOne(ctx, bson.M{"username": req.Username}).
		Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		} else {
			utils.Logger.Error().Err(err).Msg("login lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		}
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account is deactivated"})
		return
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		utils.Logger.Info().Str("username", req.Username).Msg("password mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	utils.Logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("login successful")

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Role:     user.Role,
		Username: user.Username,
	})
}
