package handlers

import (
	"log"
	"net/http"

	"natheme-api/config"
	"natheme-api/models"
	"natheme-api/service"

	"github.com/gin-gonic/gin"
)

// ListUsers returns all users — admin only
func ListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB.Order("id asc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// SearchUsers finds users by name, email or phone substring — admin only
func SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a search query"})
		return
	}
	pattern := "%" + q + "%"
	var users []models.User
	config.DB.
		Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", pattern, pattern, pattern).
		Order("id asc").
		Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// CreateUser creates an account on a user's behalf — admin only.
// Unlike signup it never issues a token; the password policy still holds.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": service.ErrMissingFields.Error()})
		return
	}
	if err := service.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": service.ErrUserExists.Error()})
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		log.Println("Create user hash error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
		Phone:        req.Phone,
		Location:     req.Location,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Println("Create user error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// UpdateUser edits a user's profile fields — admin only
func UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Location = req.Location
	if err := config.DB.Save(&user).Error; err != nil {
		log.Println("Update user error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser removes a user — admin only
func DeleteUser(c *gin.Context) {
	result := config.DB.Delete(&models.User{}, c.Param("id"))
	if result.Error != nil {
		log.Println("Delete user error:", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
