package handlers

import "github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type User = models.User
type Quiz = models.Quiz
type Blog = models.Blog
type FAQ = models.FAQ
type Avatar = models.Avatar
type ContactMessage = models.ContactMessage
