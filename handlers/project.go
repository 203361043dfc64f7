package handlers

import (
	"log"
	"net/http"

	"natheme-api/config"
	"natheme-api/models"

	"github.com/gin-gonic/gin"
)

// ListProjects returns all portfolio projects (public)
func ListProjects(c *gin.Context) {
	var projects []models.Project
	config.DB.Order("id asc").Find(&projects)
	c.JSON(http.StatusOK, gin.H{
		"count":    len(projects),
		"projects": projects,
	})
}

// CreateProject adds a project with uploaded images — admin only.
// Accepts multipart form data: name, description and zero or more files
// under "images".
func CreateProject(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project name is required"})
		return
	}
	description := c.PostForm("description")

	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil {
		for _, file := range form.File["images"] {
			if file.Size > maxUploadBytes {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Image exceeds the 10 MB limit"})
				return
			}
			urlPath, err := saveUpload(c, file, "projects", uniqueImageName(file.Filename))
			if err != nil {
				log.Println("Project image upload error:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			imageURLs = append(imageURLs, requestBaseURL(c)+urlPath)
		}
	}

	project := models.Project{Name: name, Description: description, ImageURLs: imageURLs}
	if err := config.DB.Create(&project).Error; err != nil {
		log.Println("Create project error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

type UpdateProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURLs   []string `json:"image_urls"`
}

// UpdateProject replaces a project's fields — admin only
func UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var project models.Project
	if err := config.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.ImageURLs = req.ImageURLs
	if err := config.DB.Save(&project).Error; err != nil {
		log.Println("Update project error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// DeleteProject removes a project — admin only
func DeleteProject(c *gin.Context) {
	result := config.DB.Delete(&models.Project{}, c.Param("id"))
	if result.Error != nil {
		log.Println("Delete project error:", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
