package cloudnest

import (
	"fmt"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

// Error is returned for non-2xx API responses
type Error struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cloudnest api error (status %d): %s", e.StatusCode, e.Message)
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ShareFileRequest struct {
	Email      string                 `json:"email"`
	Permission domain.SharePermission `json:"permission"`
}

type ShareFileResponse struct {
	Success   bool   `json:"success"`
	ShareLink string `json:"shareLink"`
}

type SendFileRequest struct {
	Method    domain.SendMethod `json:"method"`
	Recipient string            `json:"recipient"`
}

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type RenameFolderRequest struct {
	Name string `json:"name"`
}

type CheckoutRequest struct {
	PlanID string `json:"planId"`
	Email  string `json:"email"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
