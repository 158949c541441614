package controllers

import (
	"os"
	"time"

	"github.com/Govind-619/EstateSphere/config"
	"github.com/Govind-619/EstateSphere/models"
	"github.com/Govind-619/EstateSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LoginRequest holds agent credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an agent and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email and password are required", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed for %s: %v", req.Email, err)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		utils.LogError("Wrong password for %s", req.Email)
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !user.IsActive {
		utils.Forbidden(c, "Account is deactivated")
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		utils.LogError("Failed to generate token: %v", err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	config.DB.Model(&user).Update("last_login_at", time.Now())

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"is_admin":   user.IsAdmin,
		},
	})
}

// CreateSampleAdmin seeds an admin agent on first boot
func CreateSampleAdmin() error {
	var count int64
	if err := config.DB.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin123!"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:     "admin@estatesphere.com",
		Password:  hash,
		FirstName: "Admin",
		LastName:  "User",
		IsAdmin:   true,
		IsActive:  true,
	}
	return config.DB.Create(&admin).Error
}

// CreateDefaultPropertyTypes seeds the base property types if none exist
func CreateDefaultPropertyTypes() error {
	var count int64
	if err := config.DB.Model(&models.PropertyType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		types := []models.PropertyType{
			{Name: "House", Sequence: 1},
			{Name: "Apartment", Sequence: 2},
			{Name: "Penthouse", Sequence: 3},
			{Name: "Castle", Sequence: 4},
		}
		return tx.Create(&types).Error
	})
}
