package client

import (
	"Listline/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type ApiError struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (e ApiError) Error() string {
	return fmt.Sprintf("API error: %s (%d)", e.Message, e.Code)
}

type TransportOptions func(*Transport)

func WithClient(client *http.Client) TransportOptions {
	return func(t *Transport) {
		t.client = client
	}
}

func WithBaseURL(baseURL string) TransportOptions {
	return func(t *Transport) {
		t.baseURL = baseURL
	}
}

func WithRoundTripper(roundTripperFactory func(next http.RoundTripper) http.RoundTripper) TransportOptions {
	return func(t *Transport) {
		next := t.client.Transport
		if next == nil {
			next = http.DefaultTransport
		}
		t.client = &http.Client{
			Transport: roundTripperFactory(next),
			Timeout:   t.client.Timeout,
		}
	}
}

type Transport struct {
	baseURL string
	client  *http.Client
}

func NewTransport(baseUrl string, options ...TransportOptions) *Transport {
	transport := &Transport{
		baseURL: baseUrl,
		client:  http.DefaultClient,
	}

	for _, option := range options {
		option(transport)
	}

	return transport
}

func (t *Transport) NewRequest(ctx context.Context, method string, endpoint string, body io.Reader) (*http.Request, error) {
	base, err := url.Parse(t.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	ref, err := url.Parse("/api" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint: %w", err)
	}

	fullURL := base.ResolveReference(ref)

	request, err := http.NewRequestWithContext(ctx, method, fullURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		request.Header.Set("Content-Type", "application/json")
	}

	return request, nil
}

// Do sends req and turns error statuses into an ApiError carrying the
// server's message.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	response, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("doing request: %w", err)
	}

	if response.StatusCode >= 400 {
		defer utils.PanicOnError(response.Body.Close, "closing response body")

		apiError := ApiError{
			Message: response.Status,
		}
		_ = json.NewDecoder(response.Body).Decode(&apiError)
		apiError.Code = response.StatusCode
		return nil, apiError
	}

	return response, nil
}

// sendJson marshals body when given, sends the request and decodes the
// response into TResponse.
func sendJson[TResponse any](ctx context.Context, t *Transport, method string, endpoint string, body any) (TResponse, error) {
	var zero TResponse

	var reader io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("marshaling dto: %w", err)
		}
		reader = bytes.NewReader(jsonBytes)
	}

	request, err := t.NewRequest(ctx, method, endpoint, reader)
	if err != nil {
		return zero, fmt.Errorf("creating request: %w", err)
	}

	response, err := t.Do(request)
	if err != nil {
		return zero, fmt.Errorf("doing request: %w", err)
	}
	defer utils.PanicOnError(response.Body.Close, "closing response body")

	var responseDto TResponse
	err = json.NewDecoder(response.Body).Decode(&responseDto)
	if err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}

	return responseDto, nil
}
