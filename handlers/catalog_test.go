package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"natheme-api/config"
	"natheme-api/models"

	"github.com/gin-gonic/gin"
)

func multipartUpload(t *testing.T, r *gin.Engine, path, token, field, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if filename != "" {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadCatalog(t *testing.T) {
	r, _ := setupRouter(t)
	token := signup(t, r, "Adam", "adam@x.com")
	makeAdmin(t, "adam@x.com")

	w := multipartUpload(t, r, "/api/catalogs/upload", token, "file", "spring catalog.pdf",
		[]byte("%PDF-1.4 fake"), map[string]string{
			"title":       "Spring Catalog",
			"description": "Vertical garden solutions",
		})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}

	catalog, _ := decode(t, w)["catalog"].(map[string]any)
	filePath, _ := catalog["file_path"].(string)
	if !strings.HasPrefix(filePath, "/uploads/catalogs/") {
		t.Errorf("file_path = %q, want /uploads/catalogs/ prefix", filePath)
	}
	if !strings.HasSuffix(filePath, "-spring_catalog.pdf") {
		t.Errorf("file_path = %q, want timestamp-prefixed original name", filePath)
	}

	// The file actually landed on disk under the upload dir
	rel := strings.TrimPrefix(filePath, "/uploads/")
	if _, err := os.Stat(filepath.Join(config.C.UploadDir, filepath.FromSlash(rel))); err != nil {
		t.Errorf("uploaded file missing on disk: %v", err)
	}
}

func TestUploadCatalogRejections(t *testing.T) {
	r, _ := setupRouter(t)
	token := signup(t, r, "Adam", "adam@x.com")
	makeAdmin(t, "adam@x.com")

	t.Run("no file", func(t *testing.T) {
		w := multipartUpload(t, r, "/api/catalogs/upload", token, "file", "", nil,
			map[string]string{"title": "x"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if got := decode(t, w)["message"]; got != "File required" {
			t.Errorf("message = %v, want \"File required\"", got)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		w := multipartUpload(t, r, "/api/catalogs/upload", token, "file", "virus.exe",
			[]byte("MZ"), nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if got := decode(t, w)["message"]; got != "Only PDF or DOC files are allowed" {
			t.Errorf("message = %v", got)
		}
	})

	t.Run("not admin", func(t *testing.T) {
		customer := signup(t, r, "Carl", "carl@x.com")
		w := multipartUpload(t, r, "/api/catalogs/upload", customer, "file", "c.pdf",
			[]byte("%PDF"), nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})
}

func TestDeleteCatalogRemovesFile(t *testing.T) {
	r, _ := setupRouter(t)
	token := signup(t, r, "Adam", "adam@x.com")
	makeAdmin(t, "adam@x.com")

	w := multipartUpload(t, r, "/api/catalogs/upload", token, "file", "c.pdf",
		[]byte("%PDF"), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload failed: %s", w.Body.String())
	}
	catalog, _ := decode(t, w)["catalog"].(map[string]any)
	id := catalog["id"].(float64)
	rel := strings.TrimPrefix(catalog["file_path"].(string), "/uploads/")
	fsPath := filepath.Join(config.C.UploadDir, filepath.FromSlash(rel))

	w = doJSON(t, r, http.MethodDelete, "/api/catalogs/1", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if _, err := os.Stat(fsPath); !os.IsNotExist(err) {
		t.Errorf("stored file still on disk after delete (id %v)", id)
	}

	var count int64
	config.DB.Model(&models.Catalog{}).Count(&count)
	if count != 0 {
		t.Errorf("catalog rows = %d, want 0", count)
	}

	// Deleting again is a 404
	if w := doJSON(t, r, http.MethodDelete, "/api/catalogs/1", token, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", w.Code)
	}
}

func TestListCatalogsPublic(t *testing.T) {
	r, _ := setupRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/catalogs", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := decode(t, w)["count"]; got != float64(0) {
		t.Errorf("count = %v, want 0", got)
	}
}
