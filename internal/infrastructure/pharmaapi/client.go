package pharmaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pharmafinder-client/internal/config"
)

const (
	apiPrefix       = "/api/v1"
	requestIDHeader = "X-Request-ID"
)

// ErrReviewWithoutID возвращается при попытке изменить отзыв без ID
var ErrReviewWithoutID = errors.New("review has no id")

// Client - общий HTTP транспорт для клиентов API аптек.
// Каждый вызов - одна попытка, без повторов.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает транспорт. RequestTimeout 0 оставляет таймаут транспорта по умолчанию.
func NewClient(cfg *config.APIConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type request struct {
	method     string
	path       string
	query      string
	body       interface{}
	header     http.Header
	wantStatus int
}

// do выполняет запрос и декодирует ответ в out при статусе wantStatus
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	url := c.baseURL + apiPrefix + r.path
	if r.query != "" {
		url += "?" + r.query
	}

	var body io.Reader
	if r.body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(r.body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, r.method, url, body)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.header {
		req.Header[k] = v
	}

	c.logger.Debug("Calling pharmacy API",
		zap.String("method", r.method),
		zap.String("url", url),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &APIError{Kind: KindTransport, Method: r.method, Path: r.path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != r.wantStatus {
		apiErr := &APIError{
			Kind:       KindApplication,
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
		}

		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr.Envelope); err != nil {
			c.logger.Warn("Pharmacy API error body is not an error envelope",
				zap.String("request_id", requestID),
				zap.String("body", string(raw)))
		}

		c.logger.Error("Pharmacy API returned error",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.String("request_id", requestID),
			zap.Int("status_code", resp.StatusCode),
			zap.Stringer("envelope", apiErr.Envelope))
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response",
			zap.String("path", r.path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &APIError{
			Kind:       KindDecode,
			Method:     r.method,
			Path:       r.path,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	c.logger.Debug("Pharmacy API call successful",
		zap.String("path", r.path),
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode))

	return nil
}
