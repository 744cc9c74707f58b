package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

// TokenSource supplies the current access token for outgoing requests.
// An empty return means no token is attached.
type TokenSource func() string

// HTTPClient is the JSON/HTTP implementation of Client. It talks to
// two base URLs: the IAM surface for authentication and the account
// service for the managed-account collection.
type HTTPClient struct {
	iamBaseURL      string
	accountsBaseURL string
	http            *http.Client
	tokenSource     TokenSource
}

// NewHTTPClient constructs an HTTPClient for the given base URLs.
// Timeout bounds every request end to end.
func NewHTTPClient(iamBaseURL, accountsBaseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		iamBaseURL:      strings.TrimRight(iamBaseURL, "/"),
		accountsBaseURL: strings.TrimRight(accountsBaseURL, "/"),
		http:            &http.Client{Timeout: timeout},
	}
}

// SetTokenSource installs the access-token supplier. Requests issued
// after this call carry an Authorization: Bearer header whenever the
// source returns a non-empty token.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokenSource = ts
}

// do issues a request and decodes the response body into out (when out
// is non-nil). Transport failures map to ErrUnavailable; non-2xx
// statuses map to *BackendError.
func (c *HTTPClient) do(ctx context.Context, method, url string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &BackendError{Status: resp.StatusCode, Detail: extractDetail(resp)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// extractDetail pulls the conventional "detail" message out of an error
// response body, falling back to the HTTP status text.
func extractDetail(resp *http.Response) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return http.StatusText(resp.StatusCode)
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodPost, c.iamBaseURL+"/register", creds, &session)
	return session, err
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodPost, c.iamBaseURL+"/login", creds, &session)
	return session, err
}

func (c *HTTPClient) GoogleLoginURL() string {
	return c.iamBaseURL + "/auth/google/login"
}

func (c *HTTPClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, c.accountsBaseURL+"/get_accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (c *HTTPClient) SaveAccount(ctx context.Context, draft models.AccountDraft) error {
	return c.do(ctx, http.MethodPost, c.accountsBaseURL+"/save_account", draft, nil)
}

func (c *HTTPClient) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.accountsBaseURL+"/delete_account/"+id, nil, nil)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.iamBaseURL+"/health", nil, nil)
}
