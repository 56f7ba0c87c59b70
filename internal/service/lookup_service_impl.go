package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"

	"github.com/iwootapp/iwoot/config"
	circuitbreaker "github.com/iwootapp/iwoot/internal/infrastructure/circuit-breaker"
	"github.com/iwootapp/iwoot/internal/dto"
	"github.com/iwootapp/iwoot/pkg/httpclient"
)

type LookupServiceImpl struct {
	config  config.Config
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func CreateLookupService(config config.Config) LookupService {
	return &LookupServiceImpl{
		config:  config,
		breaker: circuitbreaker.CreateCircuitBreaker("product-lookup"),
	}
}

// Lookup enriches a product form from the external product database. An
// all-digit query is treated as a barcode and tried against the barcode
// endpoint first; anything else, or a barcode miss, goes through free-text
// search. Network or decode failures are swallowed: a degraded lookup means
// "no result", never an error.
func (s *LookupServiceImpl) Lookup(ctx context.Context, query string) (result *dto.LookupResult, err error) {
	query = strings.TrimSpace(query)
	if query == "" || s.config.LookupConfig.BaseURL == "" {
		return nil, nil
	}

	if isNumeric(query) {
		result = s.fetchFirst(ctx, fmt.Sprintf("%s/products/barcode/%s", s.config.LookupConfig.BaseURL, query))
		if result != nil {
			return result, nil
		}
	}

	result = s.fetchFirst(ctx, fmt.Sprintf("%s/products/search?q=%s", s.config.LookupConfig.BaseURL, url.QueryEscape(query)))

	return result, nil
}

// LookupByURL is the offline fallback of last resort: guess a product name
// from the last non-empty path segment of a store URL.
func (s *LookupServiceImpl) LookupByURL(rawURL string) (result *dto.LookupResult, err error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, nil
	}

	segments := strings.Split(parsed.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		segment := segments[i]
		if segment == "" {
			continue
		}

		if unescaped, err := url.PathUnescape(segment); err == nil {
			segment = unescaped
		}

		name := strings.TrimSpace(strings.NewReplacer("-", " ", "_", " ", "+", " ").Replace(segment))
		if name == "" {
			continue
		}

		return &dto.LookupResult{Name: name}, nil
	}

	return nil, nil
}

func (s *LookupServiceImpl) fetchFirst(ctx context.Context, endpoint string) *dto.LookupResult {
	body, err := s.breaker.Execute(func() ([]byte, error) {
		statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    endpoint,
			Method: http.MethodGet,
			Headers: map[string]string{
				"Accept": "application/json",
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("lookup API returned non-OK status: %d", statusCode)
		}

		return body, nil
	})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "fetchFirst").Msg("lookup degraded to no result")
		return nil
	}

	var payload dto.LookupResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "fetchFirst").Msg("lookup degraded to no result")
		return nil
	}

	if len(payload.Products) == 0 {
		return nil
	}

	return &payload.Products[0]
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return len(s) > 0
}
