package services

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/logger"
)

// MediaInfo describes a remote asset as reported by its origin.
type MediaInfo struct {
	ContentType   string `json:"contentType"`
	ContentLength string `json:"contentLength"`
	FinalURL      string `json:"finalUrl"`
}

type MediaService interface {
	Inspect(ctx context.Context, rawURL string) (*MediaInfo, error)
}

type mediaService struct {
	client *http.Client
}

func NewMediaService() MediaService {
	return &mediaService{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Inspect probes the URL with HEAD first, falling back to GET when the
// origin refuses HEAD or omits the content type. Redirects are followed
// and the final URL after redirects is reported.
func (s *mediaService) Inspect(ctx context.Context, rawURL string) (*MediaInfo, error) {
	if rawURL == "" {
		return nil, apperrors.Validation("missing url parameter")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, apperrors.Validation("url must be an absolute http(s) URL")
	}

	log := logger.WithCtx(ctx)

	resp, err := s.probe(ctx, http.MethodHead, rawURL)
	if err != nil || resp.StatusCode >= 400 || resp.Header.Get("Content-Type") == "" {
		if resp != nil {
			resp.Body.Close()
		}
		if err != nil {
			log.Debug("HEAD probe failed, retrying with GET", zap.String("url", rawURL), zap.Error(err))
		}
		resp, err = s.probe(ctx, http.MethodGet, rawURL)
		if err != nil {
			log.Warn("media probe failed", zap.String("url", rawURL), zap.Error(err))
			return nil, err
		}
	}
	defer resp.Body.Close()

	info := &MediaInfo{
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.Header.Get("Content-Length"),
		FinalURL:      rawURL,
	}
	if resp.Request != nil && resp.Request.URL != nil {
		info.FinalURL = resp.Request.URL.String()
	}
	return info, nil
}

func (s *mediaService) probe(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}
