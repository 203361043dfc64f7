package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"natheme-api/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MB

// saveUpload writes a multipart file into a subdirectory of the upload
// dir under the given name and returns the public URL path.
func saveUpload(c *gin.Context, file *multipart.FileHeader, subdir, name string) (string, error) {
	dir := filepath.Join(config.C.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + subdir + "/" + name, nil
}

// timestampedName prefixes the original filename with the upload time,
// matching how catalog files are laid out on disk.
func timestampedName(original string) string {
	base := strings.ReplaceAll(filepath.Base(original), " ", "_")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}

// uniqueImageName generates a collision-free name for project images.
func uniqueImageName(original string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

// requestBaseURL rebuilds the absolute base URL so stored image URLs are
// directly usable by the frontend.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
