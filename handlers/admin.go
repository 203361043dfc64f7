package handlers

import (
	"net/http"

	"natheme-api/config"
	"natheme-api/models"
	"natheme-api/rolestate"
	"natheme-api/service"

	"github.com/gin-gonic/gin"
)

type RoleChangeRequest struct {
	Email string `json:"email"`
}

// AdminHandler exposes owner-gated role management and the dashboard.
type AdminHandler struct {
	auth *service.AuthService
}

func NewAdminHandler(auth *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: auth}
}

// Promote raises a customer to admin — owner only
func (h *AdminHandler) Promote(c *gin.Context) {
	var req RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": service.ErrEmailRequired.Error()})
		return
	}
	user, err := h.auth.Promote(req.Email)
	if err != nil {
		respondAuthError(c, "Promote", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User " + user.Email + " promoted to admin successfully",
	})
}

// Demote returns an admin to customer — owner only
func (h *AdminHandler) Demote(c *gin.Context) {
	var req RoleChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": service.ErrEmailRequired.Error()})
		return
	}
	user, err := h.auth.Demote(req.Email)
	if err != nil {
		respondAuthError(c, "Demote", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User " + user.Email + " demoted to customer successfully",
	})
}

// Dashboard returns entity totals for the admin dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var projects, catalogs, users int64
	config.DB.Model(&models.Project{}).Count(&projects)
	config.DB.Model(&models.Catalog{}).Count(&catalogs)
	config.DB.Model(&models.User{}).Count(&users)

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard summary",
		"data": gin.H{
			"totalProjects": projects,
			"totalCatalogs": catalogs,
			"totalUsers":    users,
		},
	})
}

// GetRoleInfo returns the role state machine for informational purposes
func GetRoleInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range rolestate.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"roles":       []models.UserRole{models.RoleCustomer, models.RoleAdmin, models.RoleOwner},
		"transitions": info,
		"description": "User role lifecycle: role changes are performed by the owner only",
	})
}
