package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"crowdWatch/internal/domain"
	"crowdWatch/pkg/e"
)

// Gateway talks to the push provider's HTTP bridge. Every call is a single
// attempt; callers decide what a failure means.
type Gateway struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewGateway(baseURL string, timeout time.Duration, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type sendRequest struct {
	Message  domain.PushMessage `json:"message"`
	Critical bool               `json:"critical"`
}

type subscribeRequest struct {
	Tokens []string `json:"tokens"`
	Topic  string   `json:"topic"`
}

func (g *Gateway) Send(ctx context.Context, msg domain.PushMessage) error {
	return g.post(ctx, "/v1/send", sendRequest{Message: msg, Critical: msg.Critical})
}

func (g *Gateway) Subscribe(ctx context.Context, token, topic string) error {
	return g.post(ctx, "/v1/subscribe", subscribeRequest{Tokens: []string{token}, Topic: topic})
}

func (g *Gateway) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return e.Wrap("push.Gateway.marshal", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return e.Wrap("push.Gateway.request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway %s: %v: %w", path, err, e.ErrPushFailed)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway %s: %s: %w", path, resp.Status, e.ErrPushFailed)
	}
	return nil
}
