package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"natheme-api/config"
	"natheme-api/models"

	"github.com/gin-gonic/gin"
)

var allowedCatalogExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ListCatalogs returns all catalogs, newest first (public)
func ListCatalogs(c *gin.Context) {
	var catalogs []models.Catalog
	config.DB.Order("created_at desc").Find(&catalogs)
	c.JSON(http.StatusOK, gin.H{
		"count":    len(catalogs),
		"catalogs": catalogs,
	})
}

// UploadCatalog stores a catalog document — admin only.
// Accepts multipart form data: title, description and a "file" part.
func UploadCatalog(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File required"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedCatalogExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Only PDF or DOC files are allowed"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds the 10 MB limit"})
		return
	}

	urlPath, err := saveUpload(c, file, "catalogs", timestampedName(file.Filename))
	if err != nil {
		log.Println("Catalog upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	catalog := models.Catalog{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		FilePath:    urlPath,
	}
	if err := config.DB.Create(&catalog).Error; err != nil {
		log.Println("Catalog create error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Catalog uploaded successfully",
		"catalog": catalog,
	})
}

// DeleteCatalog removes a catalog record and its stored file — admin only
func DeleteCatalog(c *gin.Context) {
	var catalog models.Catalog
	if err := config.DB.First(&catalog, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Catalog not found"})
		return
	}

	// FilePath is the public /uploads/... path; map it back to disk
	rel := strings.TrimPrefix(catalog.FilePath, "/uploads/")
	fsPath := filepath.Join(config.C.UploadDir, filepath.FromSlash(rel))
	if err := os.Remove(fsPath); err != nil && !os.IsNotExist(err) {
		log.Println("Catalog file removal error:", err)
	}

	if err := config.DB.Delete(&catalog).Error; err != nil {
		log.Println("Catalog delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog deleted successfully"})
}
