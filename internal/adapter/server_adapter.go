package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"spendbook/internal/logger"
	"spendbook/internal/utils"
	"spendbook/models"
)

const (
	createAccountPath  = "/api/user/create-account"
	signInPath         = "/api/user/sign-in"
	addSpendingPath    = "/api/user/add-spending"
	deleteSpendingPath = "/api/user/delete-spending"
	addBudgetPath      = "/api/user/add-budget"
)

// ServerAdapter implements [Client] over the spendbook HTTP API.
type ServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewServerAdapter constructs a client pointed at serverAddress
// (scheme://host:port, no trailing slash).
func NewServerAdapter(serverAddress string, log *logger.Logger) *ServerAdapter {
	client := utils.NewHTTPClient()
	client.SetBaseURL(strings.TrimRight(serverAddress, "/"))

	return &ServerAdapter{
		client: client,
		logger: log.GetChildLogger(),
	}
}

// CreateAccount registers a new account and captures the issued bearer token
// from the Authorization response header.
func (a *ServerAdapter) CreateAccount(ctx context.Context, request models.CreateAccountRequest) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(createAccountPath)
	if err != nil {
		return fmt.Errorf("create-account request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		if token, parseErr := utils.ParseBearerToken(header); parseErr == nil {
			a.SetToken(token)
		}
	}

	return nil
}

// SignIn authenticates and stores the returned token for subsequent calls.
func (a *ServerAdapter) SignIn(ctx context.Context, request models.SignInRequest) (models.SignInResponse, error) {
	var response models.SignInResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(signInPath)
	if err != nil {
		return models.SignInResponse{}, fmt.Errorf("sign-in request failed: %w", err)
	}
	if resp.IsError() {
		return models.SignInResponse{}, apiError(resp)
	}

	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return models.SignInResponse{}, fmt.Errorf("error decoding sign-in response: %w", err)
	}

	a.SetToken(response.Token)
	return response, nil
}

// AddSpending records a spending entry and returns the updated list.
func (a *ServerAdapter) AddSpending(ctx context.Context, request models.AddSpendingRequest) ([]models.SpendingEntry, error) {
	var spending []models.SpendingEntry
	if err := a.postAuthorized(ctx, addSpendingPath, request, &spending); err != nil {
		return nil, err
	}

	return spending, nil
}

// DeleteSpending removes the entry at the given position and returns the
// updated list.
func (a *ServerAdapter) DeleteSpending(ctx context.Context, request models.DeleteSpendingRequest) ([]models.SpendingEntry, error) {
	var spending []models.SpendingEntry
	if err := a.postAuthorized(ctx, deleteSpendingPath, request, &spending); err != nil {
		return nil, err
	}

	return spending, nil
}

// AddBudget records a budget entry and returns the updated list.
func (a *ServerAdapter) AddBudget(ctx context.Context, request models.AddBudgetRequest) ([]models.BudgetEntry, error) {
	var budget []models.BudgetEntry
	if err := a.postAuthorized(ctx, addBudgetPath, request, &budget); err != nil {
		return nil, err
	}

	return budget, nil
}

// SetToken overrides the stored bearer token.
func (a *ServerAdapter) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
}

// Token returns the currently stored bearer token.
func (a *ServerAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *ServerAdapter) postAuthorized(ctx context.Context, path string, body, out any) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(a.Token()).
		SetBody(body).
		Post(path)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", path, err)
	}

	return nil
}

func apiError(resp *resty.Response) error {
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    strings.TrimSpace(string(resp.Body())),
	}
}
