package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/Kinimary/belwest/pkg/logger"
)

// BearerRoundTripper attaches the bearer token, caller service name and request id
// to every outgoing request and logs the exchange.
type BearerRoundTripper struct {
	Transport   http.RoundTripper
	Token       string
	ServiceName string
}

func NewBearerRoundTripper(transport http.RoundTripper, token, serviceName string) *BearerRoundTripper {
	return &BearerRoundTripper{
		Transport:   transport,
		Token:       token,
		ServiceName: serviceName,
	}
}

func (b *BearerRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	// RoundTrip must not modify the caller's request.
	r = r.Clone(ctx)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID == "" {
		reqID = uuid.Must(uuid.NewV4()).String()
	}

	r.Header.Set("X-Request-Id", reqID)

	if b.Token != "" {
		r.Header.Set("Authorization", "Bearer "+b.Token)
	}

	if b.ServiceName != "" {
		r.Header.Set("X-Service-Name", b.ServiceName)
	}

	slog.DebugContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "request_id", reqID)

	resp, err := b.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
		"request_id", reqID,
	)

	return resp, nil
}
