package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/code-sharing-box/internal/config"
	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/utils"
	"github.com/MKhiriev/code-sharing-box/models"
	"github.com/go-resty/resty/v2"
)

const (
	addMessagePath    = "/add-message"
	recentMessagePath = "/recent-message"

	traceIDHeader = "X-Trace-ID"
)

type httpMessageStoreAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPMessageStoreAdapter constructs an HTTP/REST implementation of
// [MessageStoreAdapter]. It normalises the base URL from
// adapterCfg.HTTPAddress and configures a JSON client with the resolved base
// URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPMessageStoreAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (MessageStoreAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewJSONClient(baseURL, adapterCfg.RequestTimeout)

	return &httpMessageStoreAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AddMessage implements [MessageStoreAdapter]. It POSTs req as JSON to
// /add-message and maps any non-2xx status to an error.
func (h *httpMessageStoreAdapter) AddMessage(ctx context.Context, req models.AddMessageRequest) error {
	resp, err := h.request(ctx).
		SetBody(req).
		Post(addMessagePath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpMessageStoreAdapter.AddMessage").Msg("add message request failed")
		return fmt.Errorf("add message request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetRecentMessage implements [MessageStoreAdapter]. It GETs /recent-message
// and decodes the JSON body.
func (h *httpMessageStoreAdapter) GetRecentMessage(ctx context.Context) (models.RecentMessageResponse, error) {
	var recent models.RecentMessageResponse

	resp, err := h.request(ctx).
		SetResult(&recent).
		Get(recentMessagePath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpMessageStoreAdapter.GetRecentMessage").Msg("recent message request failed")
		return models.RecentMessageResponse{}, fmt.Errorf("recent message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecentMessageResponse{}, err
	}
	if !recent.Success {
		return models.RecentMessageResponse{}, fmt.Errorf("%w: %s", ErrUnsuccessfulResponse, recent.Message)
	}

	return recent, nil
}

// request starts a request bound to ctx, forwarding the trace ID stored in
// ctx so server-side logs can be correlated with client-side ones.
func (h *httpMessageStoreAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}
