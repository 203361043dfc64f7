package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"natheme-api/config"
	"natheme-api/models"

	"github.com/gin-gonic/gin"
)

func TestContactMessageStoredAndMailed(t *testing.T) {
	r, mail := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Ann",
		"email":   "ann@x.com",
		"message": "I would like a vertical garden quote.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Errorf("stored messages = %d, want 1", count)
	}
	if len(mail.subjects) != 1 {
		t.Fatalf("mails sent = %d, want 1", len(mail.subjects))
	}
	if mail.subjects[0] != "New Contact Message from Ann" {
		t.Errorf("subject = %q", mail.subjects[0])
	}
}

func TestContactMissingFields(t *testing.T) {
	r, mail := setupRouter(t)

	for _, body := range []gin.H{
		{},
		{"name": "Ann", "email": "ann@x.com"},
		{"name": "Ann", "message": "hi"},
		{"email": "ann@x.com", "message": "hi"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/contact", "", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d, want 400", body, w.Code)
		}
	}

	var count int64
	config.DB.Model(&models.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Errorf("stored messages = %d, want 0", count)
	}
	if len(mail.subjects) != 0 {
		t.Errorf("mails sent = %d, want 0", len(mail.subjects))
	}
}

func TestContactMailFailureStillAccepts(t *testing.T) {
	r, mail := setupRouter(t)
	mail.err = errors.New("smtp relay down")

	w := doJSON(t, r, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Ann",
		"email":   "ann@x.com",
		"message": "hello",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; the stored message must not be lost", w.Code)
	}

	var count int64
	config.DB.Model(&models.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Errorf("stored messages = %d, want 1", count)
	}
}
