package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-key-vault/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx bridge response into a sentinel error.
// The bridge answers every failure with a structured [models.APIError], so
// the kind field drives the mapping; the HTTP status is a fallback for
// responses that carry no parseable body (proxies, panics).
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Kind != "" {
		return fmt.Errorf("%w: %s", sentinelForKind(apiErr.Kind), apiErr.Message)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusLocked:
		return fmt.Errorf("%w: %s", ErrVaultLocked, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrBridgeFailure, resp.StatusCode(), body)
	}
}

func sentinelForKind(kind string) error {
	switch kind {
	case models.ErrKindValidation:
		return ErrValidation
	case models.ErrKindAuthentication:
		return ErrUnauthorized
	case models.ErrKindVaultLocked:
		return ErrVaultLocked
	case models.ErrKindAlreadyExists:
		return ErrAlreadyExists
	case models.ErrKindAlreadySet:
		return ErrAlreadySet
	case models.ErrKindNotFound:
		return ErrNotFound
	default:
		return ErrBridgeFailure
	}
}
