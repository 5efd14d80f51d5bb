package utils

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"ideagen-backend/pkg/logger"
)

var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"x-api-key":     {},
	"x-auth-token":  {},
	"cookie":        {},
}

var sensitiveJSONField = regexp.MustCompile(`("(?i:api_key|apikey|password|secret|token)"\s*:\s*)"[^"]*"`)

// DebugTransport logs provider requests with credentials redacted.
type DebugTransport struct {
	base http.RoundTripper
}

func NewDebugTransport(base http.RoundTripper) *DebugTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &DebugTransport{base: base}
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	fields := logger.Fields{
		"method":  req.Method,
		"url":     req.URL.String(),
		"headers": RedactHeaders(req.Header),
	}

	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		req.Body = io.NopCloser(bytes.NewReader(body))
		fields["body"] = RedactBody(string(body))
		fields["body_bytes"] = len(body)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	fields["latency"] = time.Since(start).String()
	if err != nil {
		logger.WithFields(fields).WithError(err).Warn("provider request failed")
		return nil, err
	}

	fields["status"] = resp.StatusCode
	logger.WithFields(fields).Debug("provider request")
	return resp, nil
}

// RedactHeaders flattens h, masking credential headers.
func RedactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if _, ok := sensitiveHeaders[strings.ToLower(name)]; ok {
			out[name] = "[REDACTED]"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func RedactBody(body string) string {
	return sensitiveJSONField.ReplaceAllString(body, `$1"[REDACTED]"`)
}
