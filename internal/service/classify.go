package service

import (
	"context"
	"errors"
	"net"
	"net/http"

	apperr "ideagen-backend/pkg/errors"

	forkopenai "github.com/meguminnnnnnnnn/go-openai"
	openai "github.com/sashabaranov/go-openai"
	arkmodel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
)

// Classify tags a raw provider error with a Kind. Errors that already carry
// one are returned unchanged.
func Classify(err error) *apperr.AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := apperr.As(err); ok {
		return appErr
	}

	if code, transport, ok := providerStatus(err); ok {
		switch {
		case unavailableStatus(code):
			return apperr.Wrap(err, apperr.KindProviderUnavailable, "completion provider unavailable")
		case transport:
			return apperr.Wrap(err, apperr.KindProviderError, "completion provider returned a malformed response")
		default:
			return apperr.Wrap(err, apperr.KindProviderError, "completion provider rejected the request")
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.As(err, &netErr) {
		return apperr.Wrap(err, apperr.KindProviderUnavailable, "completion provider unreachable")
	}

	return apperr.Wrap(err, apperr.KindProviderError, "completion failed")
}

// providerStatus extracts the upstream HTTP status from the error types of
// each provider client: go-openai for groq/openai, the eino-ext fork of it
// for qwen and arkruntime for doubao. transport is set for request errors,
// which carry a status but no API error body.
func providerStatus(err error) (code int, transport bool, ok bool) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode, false, true
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode, true, true
	}

	var forkAPIErr *forkopenai.APIError
	if errors.As(err, &forkAPIErr) {
		return forkAPIErr.HTTPStatusCode, false, true
	}
	var forkReqErr *forkopenai.RequestError
	if errors.As(err, &forkReqErr) {
		return forkReqErr.HTTPStatusCode, true, true
	}

	var arkAPIErr *arkmodel.APIError
	if errors.As(err, &arkAPIErr) {
		return arkAPIErr.HTTPStatusCode, false, true
	}
	var arkReqErr *arkmodel.RequestError
	if errors.As(err, &arkReqErr) {
		return arkReqErr.HTTPStatusCode, true, true
	}

	return 0, false, false
}

func unavailableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
