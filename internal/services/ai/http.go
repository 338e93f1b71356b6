package ai

import (
	"Listline/internal/config"
	"Listline/internal/logging"
	"Listline/internal/metrics"
	"Listline/internal/retry"
	"Listline/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxErrorBodyExcerpt = 512

type statusError struct {
	provider config.AiProvider
	status   int
	body     string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.provider, e.status, e.body)
}

func (e *statusError) Unwrap() error {
	return utils.ErrUpstream
}

func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status == http.StatusTooManyRequests || se.status >= http.StatusInternalServerError
	}
	return false
}

type transport struct {
	provider   config.AiProvider
	httpClient *http.Client
	backoff    retry.Backoff
}

func (t *transport) postJson(ctx context.Context, url string, headers map[string]string, request any, response any) (err error) {
	start := time.Now()
	defer func() {
		metrics.AiRequests.WithLabelValues(string(t.provider), metrics.Outcome(err)).Inc()
		metrics.ObserveSince(metrics.AiDuration.WithLabelValues(string(t.provider)), start)
	}()

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshalling %s request: %w", t.provider, err)
	}

	var body []byte
	err = t.backoff.Do(ctx, func() error {
		var sendErr error
		body, sendErr = t.send(ctx, url, headers, payload)
		return sendErr
	}, isRetryable)
	if err != nil {
		logging.Logger.Errorw("ai request failed", "provider", t.provider, "error", err)
		return err
	}

	err = json.Unmarshal(body, response)
	if err != nil {
		return fmt.Errorf("decoding %s response: %w: %w", t.provider, err, utils.ErrUpstream)
	}

	logging.Logger.Infow("ai request completed", "provider", t.provider, "duration", time.Since(start))
	return nil
}

func (t *transport) send(ctx context.Context, url string, headers map[string]string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", t.provider, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w: %w", t.provider, err, utils.ErrUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w: %w", t.provider, err, utils.ErrUpstream)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := string(body)
		if len(excerpt) > maxErrorBodyExcerpt {
			excerpt = excerpt[:maxErrorBodyExcerpt]
		}
		return nil, &statusError{
			provider: t.provider,
			status:   resp.StatusCode,
			body:     excerpt,
		}
	}

	return body, nil
}

type Option func(*transport)

// WithBackoff replaces the retry policy for 429 and 5xx responses.
func WithBackoff(b retry.Backoff) Option {
	return func(t *transport) {
		t.backoff = b
	}
}

func WithHttpClient(c *http.Client) Option {
	return func(t *transport) {
		t.httpClient = c
	}
}

func newTransport(provider config.AiProvider, timeout time.Duration, opts []Option) transport {
	t := transport{
		provider: provider,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		backoff: retry.Default,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
