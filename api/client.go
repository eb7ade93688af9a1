// Package api is the single outgoing gateway to the Campus Connect backend.
// Every request passes through the same interception points: credentials are
// attached (and purged when unusable) on the way out, and authorization
// failures and transport errors are normalized on the way back.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"campus-connect-client/model"
	"campus-connect-client/pkg/apierror"
	"campus-connect-client/token"
)

const requestIDHeader = "X-Request-ID"

// CredentialSource is the persisted credential pair the gateway reads and,
// on auth failures, purges. Implemented by session.Store.
type CredentialSource interface {
	Token() (string, bool)
	Clear()
}

type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RateLimitRPM   int
	MaxUploadSize  int64
	IDCardMaxDim   int
	Credentials    CredentialSource
	OnUnauthorized func()
	Logger         *slog.Logger
	HTTPClient     *http.Client
}

type Client struct {
	baseURL        string
	httpClient     *http.Client
	creds          CredentialSource
	onUnauthorized func()
	limiter        *rate.Limiter
	validate       *validator.Validate
	logger         *slog.Logger
	maxUploadSize  int64
	idCardMaxDim   int

	Auth          *AuthAPI
	Announcements *AnnouncementsAPI
	LostFound     *LostFoundAPI
	Timetable     *TimetableAPI
	Complaints    *ComplaintsAPI
	SkillExchange *SkillExchangeAPI
	Chatbot       *ChatbotAPI
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	rpm := opts.RateLimitRPM
	if rpm <= 0 {
		rpm = 300
	}

	maxUpload := opts.MaxUploadSize
	if maxUpload <= 0 {
		maxUpload = 5 * 1024 * 1024
	}

	maxDim := opts.IDCardMaxDim
	if maxDim <= 0 {
		maxDim = 1600
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		creds:          opts.Credentials,
		onUnauthorized: opts.OnUnauthorized,
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
		validate:       validator.New(),
		logger:         logger,
		maxUploadSize:  maxUpload,
		idCardMaxDim:   maxDim,
	}

	c.Auth = &AuthAPI{c: c}
	c.Announcements = &AnnouncementsAPI{c: c}
	c.LostFound = &LostFoundAPI{c: c}
	c.Timetable = &TimetableAPI{c: c}
	c.Complaints = &ComplaintsAPI{c: c}
	c.SkillExchange = &SkillExchangeAPI{c: c}
	c.Chatbot = &ChatbotAPI{c: c}

	return c, nil
}

// do runs one request through both interception points and decodes the JSON
// body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method string, path string, contentType string, body io.Reader, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.attachCredentials(req, requestID)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response arrived; every transport-level failure collapses into
		// one generic connectivity error.
		c.logger.Warn("request failed",
			"request_id", requestID,
			"method", method,
			"path", path,
			"error", err.Error(),
		)
		return fmt.Errorf("%w: please check your internet connection", model.ErrServerUnreachable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("%w: please check your internet connection", model.ErrServerUnreachable)
	}

	duration := time.Since(started).Milliseconds()
	attrs := []any{
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", duration,
	}

	switch {
	case resp.StatusCode >= 500:
		c.logger.Error("request", attrs...)
	case resp.StatusCode >= 400:
		c.logger.Warn("request", attrs...)
	default:
		c.logger.Info("request", attrs...)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The backend rejected the credential: purge it and send the caller
		// back to the login entry point.
		if c.creds != nil {
			c.creds.Clear()
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: %w", model.ErrUnauthorized, apierror.Decode(resp.StatusCode, raw))
	}

	if resp.StatusCode >= 400 {
		return apierror.Decode(resp.StatusCode, raw)
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// attachCredentials adds the bearer header when a usable token is persisted.
// An unusable one (malformed or expired) is dropped and the stored pair is
// purged so the next request starts clean.
func (c *Client) attachCredentials(req *http.Request, requestID string) {
	if c.creds == nil {
		return
	}

	tok, ok := c.creds.Token()
	if !ok || tok == "" {
		return
	}

	if err := token.Check(tok); err != nil {
		c.logger.Warn("dropping unusable stored token", "request_id", requestID, "reason", err.Error())
		c.creds.Clear()
		return
	}

	req.Header.Set("Authorization", "Bearer "+tok)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// sendJSON validates payload, marshals it, and issues the request. Validation
// failures never leave the client.
func (c *Client) sendJSON(ctx context.Context, method string, path string, payload any, out any) error {
	if payload != nil {
		if err := c.validate.Struct(payload); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return c.do(ctx, method, path, "application/json", bytes.NewReader(raw), out)
}

// sendMultipart encodes fields and file parts as multipart form data for the
// upload endpoints (signup with ID card, complaint with attachment).
func (c *Client) sendMultipart(ctx context.Context, method string, path string, fields map[string]string, files map[string]*model.Upload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}

	for name, upload := range files {
		if upload == nil {
			continue
		}
		if int64(len(upload.Data)) > c.maxUploadSize {
			return fmt.Errorf("%w: %s exceeds the %d byte upload limit", model.ErrInvalidInput, name, c.maxUploadSize)
		}

		part, err := writer.CreateFormFile(name, upload.Filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(upload.Data); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}

	return c.do(ctx, method, path, writer.FormDataContentType(), &buf, out)
}
