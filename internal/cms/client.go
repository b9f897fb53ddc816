// Package cms talks to the headless content service over its REST API.
//
// Reads never fail: every transport error, timeout, non-2xx status or
// non-JSON response collapses to a nil *Payload so that callers can fall
// back to their default content. Writes (upload, create) return errors.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	uploadTimeout  = 30 * time.Second
	maxBodyBytes   = 10 << 20
	cacheKeyPrefix = "cms:cache:"
)

var ErrNotConfigured = errors.New("content service is not configured")

// StatusError is returned by write operations when the content service
// answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("cms %s: unexpected status %d", e.Op, e.StatusCode)
}

type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	Revalidate time.Duration
}

// Cache stores raw response bodies for the revalidate window.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type Client struct {
	baseURL    string
	token      string
	timeout    time.Duration
	revalidate time.Duration
	httpClient *http.Client
	cache      Cache
	log        *zap.Logger
}

// NewClient builds the process-wide client. cache and log may be nil.
func NewClient(cfg Config, cache Cache, log *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		timeout:    cfg.Timeout,
		revalidate: cfg.Revalidate,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		cache: cache,
		log:   log.Named("cms"),
	}
}

// Configured reports whether a base URL is set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// PublicURL is the base used to absolutise relative media URLs.
func (c *Client) PublicURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/api/" + strings.TrimPrefix(path, "/")
}

// Get fetches the collection described by req.
func (c *Client) Get(ctx context.Context, req Request) *Payload {
	return c.Fetch(ctx, req.Path())
}

// Fetch issues a GET against /api/{path}. It returns nil when the service
// is unreachable, slow, answers non-2xx, answers non-JSON or answers JSON
// without a data envelope.
func (c *Client) Fetch(ctx context.Context, path string) *Payload {
	if !c.Configured() {
		return nil
	}

	key := cacheKeyPrefix + path
	if c.cache != nil && c.revalidate > 0 {
		if body, ok := c.cache.Get(ctx, key); ok {
			if p := decodeEnvelope(body); p != nil {
				return p
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		c.log.Warn("build request failed", zap.String("path", path), zap.Error(err))
		return nil
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("content service unreachable", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("content service returned error status", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return nil
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		c.log.Warn("content service returned non-JSON response", zap.String("path", path),
			zap.String("content_type", resp.Header.Get("Content-Type")))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Warn("read response failed", zap.String("path", path), zap.Error(err))
		return nil
	}

	p := decodeEnvelope(body)
	if p == nil {
		c.log.Warn("content service returned malformed envelope", zap.String("path", path))
		return nil
	}

	if c.cache != nil && c.revalidate > 0 {
		c.cache.Set(ctx, key, body, c.revalidate)
	}
	return p
}

type UploadedFile struct {
	ID         int64   `json:"id"`
	DocumentID string  `json:"documentId,omitempty"`
	Name       string  `json:"name"`
	URL        string  `json:"url"`
	Mime       string  `json:"mime"`
	Size       float64 `json:"size"`
}

// Upload stores a single file through /api/upload.
func (c *Client) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*UploadedFile, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, escapeQuotes(filename)))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("upload"), &buf)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: "upload", StatusCode: resp.StatusCode}
	}

	var files []UploadedFile
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&files); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("upload response contained no files")
	}
	return &files[0], nil
}

// Delete removes an uploaded file through /api/upload/files/{id}.
func (c *Client) Delete(ctx context.Context, fileID int64) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(fmt.Sprintf("upload/files/%d", fileID)), nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete file %d: %w", fileID, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: "delete upload", StatusCode: resp.StatusCode}
	}
	return nil
}

type CreatedRecord struct {
	ID         int64  `json:"id"`
	DocumentID string `json:"documentId,omitempty"`
}

// Create posts {"data": data} to /api/{collection}.
func (c *Client) Create(ctx context.Context, collection string, data any) (*CreatedRecord, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		return nil, fmt.Errorf("marshal %s record: %w", collection, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(collection), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create %s record: %w", collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: "create " + collection, StatusCode: resp.StatusCode}
	}

	var out struct {
		Data *CreatedRecord `json:"data"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode create response: %w", err)
	}
	if out.Data == nil {
		return nil, fmt.Errorf("create %s: response has no data", collection)
	}
	return out.Data, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
