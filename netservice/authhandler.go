package netservice

import (
	"context"
	nethttp "net/http"

	"golang.org/x/sync/singleflight"
)

// TokenRefresher obtains a fresh credential, typically from an auth
// server. It may block; it receives the caller's context.
type TokenRefresher interface {
	RefreshToken(ctx context.Context) (string, error)
}

// TokenRefresherFunc adapts a function to the TokenRefresher interface
type TokenRefresherFunc func(ctx context.Context) (string, error)

func (f TokenRefresherFunc) RefreshToken(ctx context.Context) (string, error) { return f(ctx) }

// RefreshHandler is a stock ErrorHandler that recovers from rejected
// status codes (401 by default) by refreshing the service credential.
// Concurrent requests tripping over the same expired token share a single
// refresh call.
type RefreshHandler struct {
	service   *Service
	refresher TokenRefresher
	statuses  []int
	group     singleflight.Group
}

// Ensure RefreshHandler implements the interface
var _ ErrorHandler = (*RefreshHandler)(nil)

// NewRefreshHandler creates a handler recovering from the given status
// codes; when none are given it recovers from 401.
func NewRefreshHandler(service *Service, refresher TokenRefresher, statuses ...int) *RefreshHandler {
	if len(statuses) == 0 {
		statuses = []int{nethttp.StatusUnauthorized}
	}
	return &RefreshHandler{
		service:   service,
		refresher: refresher,
		statuses:  statuses,
	}
}

// CanHandle reports whether err carries one of the handled status codes
func (h *RefreshHandler) CanHandle(err error) bool {
	for _, status := range h.statuses {
		if IsHTTPStatusError(err, status) {
			return true
		}
	}
	return false
}

// Handle refreshes the credential and stores it on the service. The retry
// rebuilds the request, so it picks the new token up.
func (h *RefreshHandler) Handle(ctx context.Context, _ error) error {
	token, err, _ := h.group.Do("refresh", func() (any, error) {
		return h.refresher.RefreshToken(ctx)
	})
	if err != nil {
		return err
	}
	h.service.SetToken(token.(string))
	return nil
}
