package icons

import (
	"Listline/internal/caching"
	"Listline/internal/config"
	"Listline/internal/logging"
	"Listline/internal/services/secrets"
	"Listline/utils"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dghubble/oauth1"
)

const (
	svgCacheSize   = 256
	requestTimeout = 15 * time.Second
)

type Icon struct {
	Id         int
	Term       string
	PreviewUrl string
}

//go:generate mockgen -destination=./mocks/service.go -package=mocks Listline/internal/services/icons Service
type Service interface {
	// Search returns no icons and no error when the icon api is not configured.
	Search(ctx context.Context, query string, limit int) ([]Icon, error)
	// DownloadSvg returns an empty string when the icon api is not configured.
	DownloadSvg(ctx context.Context, id int, color string) (string, error)
}

type nounProjectService struct {
	baseUrl  string
	secrets  secrets.Provider
	svgCache caching.Cache[string, string]
}

func NewNounProjectService(c config.NounProjectConfig, secretsProvider secrets.Provider) Service {
	return &nounProjectService{
		baseUrl:  c.BaseUrl,
		secrets:  secretsProvider,
		svgCache: caching.NewBoundedMemoryCache[string, string](svgCacheSize),
	}
}

type searchResponse struct {
	Icons []struct {
		Id           int    `json:"id"`
		Term         string `json:"term"`
		ThumbnailUrl string `json:"thumbnail_url"`
	} `json:"icons"`
}

type downloadResponse struct {
	Base64EncodedFile string `json:"base64_encoded_file"`
}

func (s *nounProjectService) Search(ctx context.Context, query string, limit int) ([]Icon, error) {
	client, ok, err := s.client(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		logging.Logger.Warn("noun project api is not configured")
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("thumbnail_size", "84")

	var response searchResponse
	err = s.get(ctx, client, "/icon?"+params.Encode(), &response)
	if err != nil {
		return nil, fmt.Errorf("searching icons: %w", err)
	}

	result := make([]Icon, 0, len(response.Icons))
	for _, icon := range response.Icons {
		result = append(result, Icon{
			Id:         icon.Id,
			Term:       icon.Term,
			PreviewUrl: icon.ThumbnailUrl,
		})
	}

	return result, nil
}

func (s *nounProjectService) DownloadSvg(ctx context.Context, id int, color string) (string, error) {
	cacheKey := fmt.Sprintf("%d:%s", id, color)
	if svg, ok := s.svgCache.TryGet(cacheKey); ok {
		return svg, nil
	}

	client, ok, err := s.client(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	params := url.Values{}
	params.Set("color", color)
	params.Set("filetype", "svg")

	var response downloadResponse
	err = s.get(ctx, client, fmt.Sprintf("/icon/%d/download?%s", id, params.Encode()), &response)
	if err != nil {
		return "", fmt.Errorf("downloading icon %d: %w", id, err)
	}

	if response.Base64EncodedFile == "" {
		return "", nil
	}

	decoded, err := base64.StdEncoding.DecodeString(response.Base64EncodedFile)
	if err != nil {
		return "", fmt.Errorf("decoding icon %d: %w", id, err)
	}

	svg := string(decoded)
	s.svgCache.Put(cacheKey, svg)
	return svg, nil
}

// client returns an http client signing two-legged OAuth 1.0a requests with
// the current consumer credentials. ok is false while they are not configured.
func (s *nounProjectService) client(ctx context.Context) (client *http.Client, ok bool, err error) {
	key, err := s.secrets.Get(ctx, secrets.NounProjectKey)
	if err != nil {
		return nil, false, fmt.Errorf("resolving noun project key: %w", err)
	}

	secret, err := s.secrets.Get(ctx, secrets.NounProjectSecret)
	if err != nil {
		return nil, false, fmt.Errorf("resolving noun project secret: %w", err)
	}

	if key == "" || secret == "" {
		return nil, false, nil
	}

	client = oauth1.NewConfig(key, secret).Client(ctx, oauth1.NewToken("", ""))
	client.Timeout = requestTimeout
	return client, true, nil
}

func (s *nounProjectService) get(ctx context.Context, client *http.Client, path string, response any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseUrl+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling noun project: %w: %w", err, utils.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("noun project returned status %d: %s: %w", resp.StatusCode, body, utils.ErrUpstream)
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("decoding noun project response: %w", err)
	}

	return nil
}
