package dto

import "github.com/medconnect/telemed-backend/internal/models"

type ProcessSessionRequest struct {
	SessionID string `json:"session_id"`
}

type SessionResponse struct {
	User    *models.User `json:"user"`
	Success bool         `json:"success"`
}

type MeResponse struct {
	User *models.User `json:"user"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
