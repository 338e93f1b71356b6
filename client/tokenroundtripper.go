package client

import (
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// TokenRoundTripper adds the bearer token of an oauth2.TokenSource to every
// request.
type TokenRoundTripper struct {
	next        http.RoundTripper
	tokenSource oauth2.TokenSource
}

func NewTokenRoundTripper(next http.RoundTripper, tokenSource oauth2.TokenSource) *TokenRoundTripper {
	return &TokenRoundTripper{
		next:        next,
		tokenSource: tokenSource,
	}
}

func (rt *TokenRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := rt.tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("getting access token: %w", err)
	}

	req = req.Clone(req.Context())
	token.SetAuthHeader(req)

	return rt.next.RoundTrip(req)
}

// WithTokenSource authenticates every request, tokens are cached until they expire.
func WithTokenSource(tokenSource oauth2.TokenSource) TransportOptions {
	return WithRoundTripper(func(next http.RoundTripper) http.RoundTripper {
		return NewTokenRoundTripper(next, oauth2.ReuseTokenSource(nil, tokenSource))
	})
}

// WithAccessToken authenticates every request with a fixed bearer token.
func WithAccessToken(accessToken string) TransportOptions {
	return WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
}
