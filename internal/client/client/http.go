package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/netx"
	"github.com/google/uuid"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	newRequestID func() string
}

// NewHTTPClient validates baseURL and returns a client for it. A zero timeout
// leaves requests unbounded apart from their context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("server url %q: missing host", baseURL)
	}

	if log == nil {
		log = logging.Nop()
	}

	return &HTTPClient{
		baseURL:      strings.TrimRight(u.String(), "/"),
		http:         &http.Client{Timeout: timeout},
		log:          log.With("component", "api"),
		newRequestID: uuid.NewString,
	}, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.NewUser) (string, error) {
	status, body, err := c.do(ctx, http.MethodPost, common.CreateUserPath, u)
	if err != nil {
		return "", err
	}
	if !netx.IsSuccess(status) {
		return "", rejected(status, body)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		c.log.Debug(ctx, "create user: unreadable success body", "error", err)
	}
	return resp.Message, nil
}

// ListUsers accepts either a {"data": [...]} envelope or a bare array.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	status, body, err := c.do(ctx, http.MethodGet, common.UsersPath, nil)
	if err != nil {
		return nil, err
	}
	if !netx.IsSuccess(status) {
		return nil, rejected(status, body)
	}

	users, err := decodeUsers(body)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	status, body, err := c.do(ctx, http.MethodDelete, common.UsersPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	if !netx.IsSuccess(status) {
		return rejected(status, body)
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}

	requestID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		if netx.IsTransportError(err) {
			return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return 0, nil, err
	}

	body, err := netx.ReadBody(resp)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.Debug(ctx, "request completed", "status", resp.StatusCode, "elapsed", time.Since(start))
	return resp.StatusCode, body, nil
}

func rejected(status int, body []byte) error {
	msg, _ := ExtractMessage(body)
	return &RejectedError{StatusCode: status, Message: msg, Body: body}
}

func decodeUsers(body []byte) ([]models.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrMalformedResponse
	}

	if trimmed[0] == '[' {
		var users []models.User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return users, nil
	}

	var envelope struct {
		Data *[]models.User `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if envelope.Data == nil {
		return nil, ErrMalformedResponse
	}
	return *envelope.Data, nil
}
