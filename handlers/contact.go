package handlers

import (
	"log"
	"net/http"

	"natheme-api/config"
	"natheme-api/mailer"
	"natheme-api/models"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactHandler stores contact-form messages and notifies the
// configured receiver by mail.
type ContactHandler struct {
	mail mailer.Mailer
}

func NewContactHandler(mail mailer.Mailer) *ContactHandler {
	return &ContactHandler{mail: mail}
}

// SendMessage handles a public contact-form submission
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields (name, email, message) are required."})
		return
	}

	msg := models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := config.DB.Create(&msg).Error; err != nil {
		log.Println("Contact message store error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while sending message."})
		return
	}

	// The row is committed; a mail failure must not lose the message
	body := "You received a new message from the Natheme contact form.\n\n" +
		"Name: " + req.Name + "\n" +
		"Email: " + req.Email + "\n" +
		"Message:\n" + req.Message + "\n"
	if err := h.mail.Send("New Contact Message from "+req.Name, body); err != nil {
		log.Println("Contact mail error:", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message received.",
	})
}
