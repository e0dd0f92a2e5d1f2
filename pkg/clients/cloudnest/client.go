package cloudnest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudnest/cloudnest/pkg/domain"
)

// ClientInterface defines the operations of the CloudNest API boundary.
// Errors propagate honestly; the canned-fallback contract lives in
// Resolver, not here, so a real backend integration can use this
// client directly.
type ClientInterface interface {
	// Auth operations
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Signup(ctx context.Context, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context) error

	// File operations
	GetFiles(ctx context.Context) ([]domain.File, error)
	UploadFile(ctx context.Context, req *domain.UploadRequest) (*domain.File, error)
	DeleteFile(ctx context.Context, fileID int64) error
	RestoreFile(ctx context.Context, fileID int64) (*domain.File, error)
	ShareFile(ctx context.Context, fileID int64, req *ShareFileRequest) (*ShareFileResponse, error)
	SendFile(ctx context.Context, fileID int64, req *SendFileRequest) error

	// Trash operations
	GetTrash(ctx context.Context) ([]domain.TrashItem, error)
	PermanentDelete(ctx context.Context, trashID int64, confirmed bool) error
	EmptyTrash(ctx context.Context, confirmed bool) error

	// Folder operations
	GetFolders(ctx context.Context) ([]domain.Folder, error)
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*domain.Folder, error)
	RenameFolder(ctx context.Context, folderID int64, req *RenameFolderRequest) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, folderID int64) error

	// Billing operations
	GetPlans(ctx context.Context) ([]domain.Plan, error)
	Checkout(ctx context.Context, req *CheckoutRequest) (*domain.Receipt, error)

	// Admin operations
	Health(ctx context.Context) (*HealthResponse, error)
	Reset(ctx context.Context) error
}

// Client provides a high-level interface for the CloudNest API
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new CloudNest client with the given options
func NewClient(options ...ClientOption) *Client {
	config := DefaultConfig()

	for _, option := range options {
		option(config)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// SetSessionToken installs the token returned by Login or Signup for
// subsequent authenticated calls.
func (c *Client) SetSessionToken(token string) {
	c.config.SessionToken = token
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/login", &CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	var result AuthResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process login response: %w", err)
	}

	return &result, nil
}

func (c *Client) Signup(ctx context.Context, email, password string) (*AuthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/signup", &CredentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	var result AuthResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process signup response: %w", err)
	}

	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process logout response: %w", err)
	}

	return nil
}

func (c *Client) GetFiles(ctx context.Context) ([]domain.File, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/files", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get files: %w", err)
	}

	var result []domain.File
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process files response: %w", err)
	}

	return result, nil
}

func (c *Client) UploadFile(ctx context.Context, req *domain.UploadRequest) (*domain.File, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/files", req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	var result domain.File
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process upload response: %w", err)
	}

	return &result, nil
}

func (c *Client) DeleteFile(ctx context.Context, fileID int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/files/%d", fileID), nil)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process delete response: %w", err)
	}

	return nil
}

func (c *Client) RestoreFile(ctx context.Context, fileID int64) (*domain.File, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/files/%d/restore", fileID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to restore file: %w", err)
	}

	var result domain.File
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process restore response: %w", err)
	}

	return &result, nil
}

func (c *Client) ShareFile(ctx context.Context, fileID int64, req *ShareFileRequest) (*ShareFileResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/files/%d/share", fileID), req)
	if err != nil {
		return nil, fmt.Errorf("failed to share file: %w", err)
	}

	var result ShareFileResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process share response: %w", err)
	}

	return &result, nil
}

func (c *Client) SendFile(ctx context.Context, fileID int64, req *SendFileRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/files/%d/send", fileID), req)
	if err != nil {
		return fmt.Errorf("failed to send file: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process send response: %w", err)
	}

	return nil
}

func (c *Client) GetTrash(ctx context.Context) ([]domain.TrashItem, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/trash", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get trash: %w", err)
	}

	var result []domain.TrashItem
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process trash response: %w", err)
	}

	return result, nil
}

func (c *Client) PermanentDelete(ctx context.Context, trashID int64, confirmed bool) error {
	path := fmt.Sprintf("/api/trash/%d?confirm=%t", trashID, confirmed)

	resp, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return fmt.Errorf("failed to permanently delete: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process permanent delete response: %w", err)
	}

	return nil
}

func (c *Client) EmptyTrash(ctx context.Context, confirmed bool) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/trash?confirm=%t", confirmed), nil)
	if err != nil {
		return fmt.Errorf("failed to empty trash: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process empty trash response: %w", err)
	}

	return nil
}

func (c *Client) GetFolders(ctx context.Context) ([]domain.Folder, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/folders", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get folders: %w", err)
	}

	var result []domain.Folder
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process folders response: %w", err)
	}

	return result, nil
}

func (c *Client) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*domain.Folder, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/folders", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	var result domain.Folder
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process create folder response: %w", err)
	}

	return &result, nil
}

func (c *Client) RenameFolder(ctx context.Context, folderID int64, req *RenameFolderRequest) (*domain.Folder, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/api/folders/%d", folderID), req)
	if err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}

	var result domain.Folder
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process rename folder response: %w", err)
	}

	return &result, nil
}

func (c *Client) DeleteFolder(ctx context.Context, folderID int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/folders/%d", folderID), nil)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process delete folder response: %w", err)
	}

	return nil
}

func (c *Client) GetPlans(ctx context.Context) ([]domain.Plan, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/plans", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	var result []domain.Plan
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process plans response: %w", err)
	}

	return result, nil
}

func (c *Client) Checkout(ctx context.Context, req *CheckoutRequest) (*domain.Receipt, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/checkout", req)
	if err != nil {
		return nil, fmt.Errorf("failed to check out: %w", err)
	}

	var result domain.Receipt
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process checkout response: %w", err)
	}

	return &result, nil
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get health: %w", err)
	}

	var result HealthResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to process health response: %w", err)
	}

	return &result, nil
}

func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/reset", nil)
	if err != nil {
		return fmt.Errorf("failed to reset demo data: %w", err)
	}

	var result SuccessResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return fmt.Errorf("failed to process reset response: %w", err)
	}

	return nil
}

// doRequest performs an HTTP request with JSON encoding and the
// configured default headers
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var requestBody io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewBuffer(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.config.DefaultHeaders {
		req.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	if c.config.SessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.SessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// handleResponse decodes a JSON response, mapping non-2xx statuses to
// *Error
func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errorResponse struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}

		message := resp.Status
		if json.Unmarshal(body, &errorResponse) == nil {
			if errorResponse.Error != "" {
				message = errorResponse.Error
			} else if errorResponse.Message != "" {
				message = errorResponse.Message
			}
		}

		return &Error{
			StatusCode: resp.StatusCode,
			Message:    message,
			Body:       string(body),
		}
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
