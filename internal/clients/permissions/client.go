package permissions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Kinimary/belwest/internal/entity"
	"github.com/Kinimary/belwest/pkg/config"
	"github.com/Kinimary/belwest/pkg/transport"
)

const (
	serviceName         = "permctl"
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
)

// APIError is a non-2xx answer that does not map onto a sentinel error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("permissions api: status %d", e.StatusCode)
	}

	return fmt.Sprintf("permissions api: status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.ClientConfig) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewBearerRoundTripper(
		retryClient.HTTPClient.Transport, cfg.Token, serviceName)

	retryClient.Logger = nil

	// Only transport failures are retried; an HTTP answer is final.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

func (c *Client) Matrix(ctx context.Context) (map[string]map[string][]string, error) {
	var out map[string]map[string][]string

	err := c.do(ctx, http.MethodGet, "/api/permissions/matrix", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("get matrix: %w", err)
	}

	return out, nil
}

func (c *Client) Users(ctx context.Context) ([]entity.User, error) {
	var out []entity.User

	err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return out, nil
}

func (c *Client) UserPermissions(ctx context.Context, userID int64) (entity.UserPermissions, error) {
	var out entity.UserPermissions

	err := c.do(ctx, http.MethodGet, "/api/permissions/user/"+strconv.FormatInt(userID, 10), nil, nil, &out)
	if err != nil {
		return entity.UserPermissions{}, fmt.Errorf("get permissions of user %d: %w", userID, err)
	}

	return out, nil
}

type upsertRequest struct {
	UserID   int64           `json:"user_id"`
	Resource entity.Resource `json:"resource"`
	Action   entity.Action   `json:"action"`
	Granted  bool            `json:"granted"`
}

func (c *Client) UpsertCustom(ctx context.Context, userID int64, p entity.CustomPermission) error {
	body := upsertRequest{UserID: userID, Resource: p.Resource, Action: p.Action, Granted: p.Granted}

	err := c.do(ctx, http.MethodPost, "/api/permissions/custom", nil, body, nil)
	if err != nil {
		return fmt.Errorf("save %s/%s of user %d: %w", p.Resource, p.Action, userID, err)
	}

	return nil
}

func (c *Client) DeleteCustom(ctx context.Context, userID int64, r entity.Resource, a entity.Action) error {
	path := fmt.Sprintf("/api/permissions/custom/%d/%s/%s",
		userID, url.PathEscape(string(r)), url.PathEscape(string(a)))

	err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("delete %s/%s of user %d: %w", r, a, userID, err)
	}

	return nil
}

func (c *Client) ResetCustom(ctx context.Context, userID int64) error {
	err := c.do(ctx, http.MethodDelete, "/api/permissions/custom/reset/"+strconv.FormatInt(userID, 10), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("reset user %d: %w", userID, err)
	}

	return nil
}

func (c *Client) Audit(ctx context.Context, f entity.AuditFilter) ([]entity.AuditEntry, error) {
	var out []entity.AuditEntry

	err := c.do(ctx, http.MethodGet, "/api/permissions/audit", auditQuery(f), nil, &out)
	if err != nil {
		return nil, fmt.Errorf("get audit: %w", err)
	}

	return out, nil
}

type checkResponse struct {
	Allowed bool `json:"allowed"`
}

// Check asks the backend whether the token owner holds the permission.
func (c *Client) Check(ctx context.Context, r entity.Resource, a entity.Action) (bool, error) {
	q := url.Values{}
	q.Set("resource", string(r))
	q.Set("action", string(a))

	var out checkResponse

	err := c.do(ctx, http.MethodGet, "/api/permissions/check", q, nil, &out)
	if err != nil {
		return false, fmt.Errorf("check %s/%s: %w", r, a, err)
	}

	return out.Allowed, nil
}

func auditQuery(f entity.AuditFilter) url.Values {
	q := url.Values{}

	if f.UserID != nil {
		q.Set("user_id", strconv.FormatInt(*f.UserID, 10))
	}

	if f.Resource != nil {
		q.Set("resource", string(*f.Resource))
	}

	if f.Action != nil {
		q.Set("action", string(*f.Action))
	}

	if f.Granted != nil {
		q.Set("granted", strconv.FormatBool(*f.Granted))
	}

	if f.Since != nil {
		q.Set("since", f.Since.Format(time.RFC3339))
	}

	if f.Limit != 0 {
		q.Set("limit", strconv.FormatUint(f.Limit, 10))
	}

	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type errorResponse struct {
	Message string `json:"message"`
}

func parseError(status int, body []byte) error {
	var e errorResponse

	_ = json.Unmarshal(body, &e)

	apiErr := &APIError{StatusCode: status, Message: e.Message}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", entity.ErrUnauthorized, apiErr)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", entity.ErrForbidden, apiErr)
	case http.StatusNotFound:
		// Both a missing user and a missing override answer 404; only the message tells them apart.
		if e.Message == entity.ErrMsgUserNotFound {
			return fmt.Errorf("%w: %w", entity.ErrUserNotFound, apiErr)
		}

		return fmt.Errorf("%w: %w", entity.ErrNotFound, apiErr)
	default:
		return apiErr
	}
}
