package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"rolodex/internal/app/client/config"
	"rolodex/internal/domain/contact"
	"rolodex/internal/domain/group"
)

// APIError is a non-2xx response decoded from the server's problem body.
type APIError struct {
	Status int
	Detail string
	Fields map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d: %s (%d field violations)", e.Status, e.Detail, len(e.Fields))
}

// ListParams mirrors the collection-read query parameters.
type ListParams struct {
	Page    int
	Size    int
	Sort    string
	Order   string
	Name    string
	Email   string
	MinAge  *int
	MaxAge  *int
	GroupID *int64
}

type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &HTTPClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Rolodex-Client/1.0",
	}
}

// HealthCheck verifies the server is reachable.
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	var resp struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := h.do(ctx, http.MethodGet, "/api/v1/health", nil, &resp); err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	if resp.Database != "up" {
		return fmt.Errorf("server is up but its database is %s", resp.Database)
	}
	return nil
}

func (h *HTTPClient) CreateContact(ctx context.Context, req contact.CreateRequest) (*contact.Response, error) {
	var resp contact.Response
	if err := h.do(ctx, http.MethodPost, "/api/contacts", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *HTTPClient) GetContact(ctx context.Context, id int64) (*contact.Response, error) {
	var resp contact.Response
	if err := h.do(ctx, http.MethodGet, fmt.Sprintf("/api/contacts/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *HTTPClient) ListContacts(ctx context.Context, params ListParams) (*contact.ListResponse, error) {
	var resp contact.ListResponse
	if err := h.do(ctx, http.MethodGet, "/api/contacts"+params.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *HTTPClient) UpdateContact(ctx context.Context, id int64, req contact.UpdateRequest) (*contact.Response, error) {
	var resp contact.Response
	if err := h.do(ctx, http.MethodPut, fmt.Sprintf("/api/contacts/%d", id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *HTTPClient) DeleteContact(ctx context.Context, id int64) error {
	return h.do(ctx, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", id), nil, nil)
}

func (h *HTTPClient) ListGroups(ctx context.Context) ([]group.Response, error) {
	var resp struct {
		Groups []group.Response `json:"groups"`
		Total  int              `json:"total"`
	}
	if err := h.do(ctx, http.MethodGet, "/api/groups", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Groups, nil
}

func (h *HTTPClient) CreateGroup(ctx context.Context, req group.CreateRequest) (*group.Response, error) {
	var resp group.Response
	if err := h.do(ctx, http.MethodPost, "/api/groups", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (h *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads huma's problem+json body, collecting per-field
// violations when the server reported any.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var problem struct {
		Detail string `json:"detail"`
		Errors []struct {
			Message  string `json:"message"`
			Location string `json:"location"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil {
		apiErr.Detail = problem.Detail
		if len(problem.Errors) > 0 {
			apiErr.Fields = make(map[string]string, len(problem.Errors))
			for _, e := range problem.Errors {
				apiErr.Fields[e.Location] = e.Message
			}
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func (p ListParams) encode() string {
	values := url.Values{}
	add := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}

	if p.Page > 0 {
		add("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		add("size", strconv.Itoa(p.Size))
	}
	add("sort", p.Sort)
	add("order", p.Order)
	add("name", p.Name)
	add("email", p.Email)
	if p.MinAge != nil {
		add("min_age", strconv.Itoa(*p.MinAge))
	}
	if p.MaxAge != nil {
		add("max_age", strconv.Itoa(*p.MaxAge))
	}
	if p.GroupID != nil {
		add("group_id", strconv.FormatInt(*p.GroupID, 10))
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
