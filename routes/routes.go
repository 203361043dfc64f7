package routes

import (
	"natheme-api/handlers"
	"natheme-api/middleware"
	"natheme-api/models"
	"natheme-api/service"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the constructed endpoint handlers for route setup.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Admin   *handlers.AdminHandler
	Contact *handlers.ContactHandler
}

func SetupRoutes(r *gin.Engine, tokens *service.TokenService, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/signup", h.Auth.Signup)
		public.POST("/auth/signin", h.Auth.Signin)

		// Site content (no auth needed)
		public.GET("/projects", handlers.ListProjects)
		public.GET("/catalogs", handlers.ListCatalogs)

		// Contact form
		public.POST("/contact", h.Contact.SendMessage)

		// Role lifecycle info (great for docs/Postman)
		public.GET("/roles", handlers.GetRoleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(tokens))
	{
		auth.GET("/auth/me", h.Auth.Me)
	}

	// ── Admin routes (owner qualifies for every admin gate) ────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleAdmin, models.RoleOwner))
	{
		// Project management
		admin.POST("/projects", handlers.CreateProject)
		admin.PUT("/projects/:id", handlers.UpdateProject)
		admin.DELETE("/projects/:id", handlers.DeleteProject)

		// Catalog management
		admin.POST("/catalogs/upload", handlers.UploadCatalog)
		admin.DELETE("/catalogs/:id", handlers.DeleteCatalog)

		// User management
		admin.GET("/users", handlers.ListUsers)
		admin.GET("/users/search", handlers.SearchUsers)
		admin.POST("/users", handlers.CreateUser)
		admin.PUT("/users/:id", handlers.UpdateUser)
		admin.DELETE("/users/:id", handlers.DeleteUser)

		// Dashboard
		admin.GET("/admin/dashboard", h.Admin.Dashboard)
	}

	// ── Owner routes (admin gate layered with the owner gate) ──────
	owner := r.Group("/api/admin")
	owner.Use(
		middleware.AuthRequired(tokens),
		middleware.RoleRequired(models.RoleAdmin, models.RoleOwner),
		middleware.RoleRequired(models.RoleOwner),
	)
	{
		owner.PUT("/promote", h.Admin.Promote)
		owner.PUT("/demote", h.Admin.Demote)
	}
}
