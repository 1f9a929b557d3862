package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lakelodge/internal/service"
)

type contactPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// SubmitContact handles the public contact form.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "Invalid request body") {
		return
	}

	_, err := a.contacts.Create(c.Request.Context(), service.ContactInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Interest: payload.Interest,
		Message:  payload.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactFieldMissing):
			respondError(c, http.StatusBadRequest, "Name, email, and message are required")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to process contact form")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact form submitted successfully"})
}

// ListContactSubmissions returns all inquiries, newest first.
func (a *API) ListContactSubmissions(c *gin.Context) {
	items, err := a.contacts.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": items})
}

// MarkContactRead flags one inquiry as read.
func (a *API) MarkContactRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := a.contacts.MarkRead(id); err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, http.StatusNotFound, "Message not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteContactSubmission removes one inquiry.
func (a *API) DeleteContactSubmission(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrContactNotFound):
			respondError(c, http.StatusNotFound, "Message not found")
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete message")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ShowMessages renders the admin inbox.
func (a *API) ShowMessages(c *gin.Context) {
	items, err := a.contacts.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "messages.html", gin.H{
			"title": "Messages",
			"error": "Failed to load messages",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "messages.html", gin.H{
		"title":    "Messages",
		"messages": items,
	})
}
