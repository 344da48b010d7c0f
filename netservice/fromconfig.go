package netservice

import (
	"github.com/gaborage/go-netkit/config"
	"github.com/gaborage/go-netkit/logger"
)

// NewFromConfig builds a service from loaded configuration. Trace header
// propagation is registered as stock modifiers when enabled, so it stays
// subject to the ordinary modifier ordering rules.
func NewFromConfig(cfg *config.Config, log logger.Logger) *Service {
	b := NewBuilder(log).
		WithTimeout(cfg.Client.Timeout).
		WithBearerScheme(cfg.Client.Bearer.Scheme).
		WithToken(cfg.Auth.Token)

	if cfg.Client.Payload.Log {
		b.WithPayloadLogging(cfg.Client.Payload.MaxBytes)
	}

	if cfg.Client.Trace.Headers {
		b.WithModifier(TraceIDModifier()).
			WithModifier(TraceContextModifier())
	}

	return b.Build()
}
