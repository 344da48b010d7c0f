package netservice

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/gaborage/go-netkit/logger"
)

const (
	// DefaultTimeout is the default request timeout duration
	DefaultTimeout = 30 * time.Second

	// DefaultBearerScheme is the default Authorization scheme prefix
	DefaultBearerScheme = "Bearer"

	// DefaultMaxPayloadLogBytes caps payload logging output
	DefaultMaxPayloadLogBytes = 2048
)

// Service orchestrates the request pipeline: descriptor conversion,
// modifier application, credential injection, the transport call, the
// validator chain, and handler-gated recovery with exactly one retry.
type Service struct {
	transport Transport
	logger    logger.Logger
	config    *Config

	mu        sync.RWMutex
	token     string
	modifiers []RequestModifier
	handlers  []ErrorHandler
}

// New creates a new Service with default configuration over the standard
// HTTP transport.
func New(log logger.Logger) *Service {
	return NewBuilder(log).Build()
}

// Builder provides a fluent interface for configuring the service
type Builder struct {
	config    *Config
	logger    logger.Logger
	transport Transport
	token     string
	modifiers []RequestModifier
	handlers  []ErrorHandler
}

// NewBuilder creates a new service builder
func NewBuilder(log logger.Logger) *Builder {
	return &Builder{
		config: &Config{
			Timeout:            DefaultTimeout,
			BearerScheme:       DefaultBearerScheme,
			TextEncoding:       unicode.UTF8,
			MaxPayloadLogBytes: DefaultMaxPayloadLogBytes,
		},
		logger: log,
	}
}

// WithTransport sets a custom transport
func (b *Builder) WithTransport(t Transport) *Builder {
	b.transport = t
	return b
}

// WithTimeout sets the request timeout used by the default transport
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// WithToken sets the initial credential
func (b *Builder) WithToken(token string) *Builder {
	b.token = token
	return b
}

// WithBearerScheme sets the Authorization scheme prefix
func (b *Builder) WithBearerScheme(scheme string) *Builder {
	if scheme != "" {
		b.config.BearerScheme = scheme
	}
	return b
}

// WithTextEncoding sets the charset used by the string-decoding operations
func (b *Builder) WithTextEncoding(enc encoding.Encoding) *Builder {
	if enc != nil {
		b.config.TextEncoding = enc
	}
	return b
}

// WithModifier appends a request modifier
func (b *Builder) WithModifier(m RequestModifier) *Builder {
	b.modifiers = append(b.modifiers, m)
	return b
}

// WithErrorHandler appends an error handler
func (b *Builder) WithErrorHandler(h ErrorHandler) *Builder {
	b.handlers = append(b.handlers, h)
	return b
}

// WithPayloadLogging enables debug logging of headers and bodies, capped
// at maxBytes per payload
func (b *Builder) WithPayloadLogging(maxBytes int) *Builder {
	b.config.LogPayloads = true
	if maxBytes > 0 {
		b.config.MaxPayloadLogBytes = maxBytes
	}
	return b
}

// Build creates the service with the configured options
func (b *Builder) Build() *Service {
	transport := b.transport
	if transport == nil {
		transport = NewHTTPTransport(b.config.Timeout)
	}
	return &Service{
		transport: transport,
		logger:    b.logger,
		config:    b.config,
		token:     b.token,
		modifiers: b.modifiers,
		handlers:  b.handlers,
	}
}

// SetToken overwrites the current credential
func (s *Service) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current credential
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// AddModifier appends a request modifier; modifiers apply in registration order
func (s *Service) AddModifier(m RequestModifier) {
	s.mu.Lock()
	s.modifiers = append(s.modifiers, m)
	s.mu.Unlock()
}

// SetModifiers replaces the modifier list
func (s *Service) SetModifiers(modifiers []RequestModifier) {
	s.mu.Lock()
	s.modifiers = modifiers
	s.mu.Unlock()
}

// AddErrorHandler appends an error handler; the first registered handler
// whose CanHandle matches a failure wins
func (s *Service) AddErrorHandler(h ErrorHandler) {
	s.mu.Lock()
	s.handlers = append(s.handlers, h)
	s.mu.Unlock()
}

// SetErrorHandlers replaces the handler list
func (s *Service) SetErrorHandlers(handlers []ErrorHandler) {
	s.mu.Lock()
	s.handlers = handlers
	s.mu.Unlock()
}

// RequestData issues the request described by provider and returns the raw
// body bytes and response metadata. Validators run in order after the
// transport call; the first failure short-circuits the chain. On a
// transport or validation failure the first matching error handler is
// given one chance to recover, after which the request is replayed exactly
// once and the second outcome is returned unconditionally.
func (s *Service) RequestData(ctx context.Context, provider RequestProvider, validators ...ResponseValidator) ([]byte, *Response, error) {
	body, resp, err := s.attempt(ctx, provider, validators)
	if err == nil {
		return body, resp, nil
	}
	if !recoverable(err) {
		return nil, nil, err
	}

	handler := s.findHandler(err)
	if handler == nil {
		return nil, nil, err
	}

	// Cancellation observed before recovery starts prevents it from starting.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, nil, NewTransportError("request cancelled before recovery", ctxErr)
	}

	s.logRecovery(err)
	if handlerErr := handler.Handle(ctx, err); handlerErr != nil {
		// A failed recovery propagates its own error, not the original.
		return nil, nil, handlerErr
	}

	// Exactly one retry; whatever it yields is final.
	return s.attempt(ctx, provider, validators)
}

// attempt runs one full pass of the pipeline: build, modify, inject the
// credential, call the transport, check response shape, validate.
func (s *Service) attempt(ctx context.Context, provider RequestProvider, validators []ResponseValidator) ([]byte, *Response, error) {
	req, err := provider.NetworkRequest()
	if err != nil {
		return nil, nil, NewTransportError("failed to build request", err)
	}
	req = req.Clone()

	for _, m := range s.modifierSnapshot() {
		req = m.Modify(ctx, req)
	}
	s.injectCredential(req)

	start := time.Now()
	s.logRequest(req)

	body, resp, err := s.transport.Do(ctx, req)
	if err != nil {
		return nil, nil, NewTransportError("transport call failed", err)
	}
	if resp == nil || resp.StatusCode == 0 {
		return nil, nil, NewInvalidResponseError("response carries no status code")
	}

	for _, v := range validators {
		if cause := v.Validate(resp, body); cause != nil {
			return nil, nil, NewValidationError("response rejected", cause)
		}
	}

	if len(body) == 0 {
		return nil, nil, NewNoDataError()
	}

	s.logResponse(resp, body, time.Since(start))
	return body, resp, nil
}

// injectCredential fills the bearer token into an Authorization header
// that a modifier already seeded. Requests without the header are sent
// unauthenticated.
func (s *Service) injectCredential(req *Request) {
	key, ok := headerName(req.Headers, HeaderAuthorization)
	if !ok {
		return
	}
	req.Headers[key] = s.config.BearerScheme + " " + s.Token()
}

// findHandler returns the first registered handler claiming err, or nil
func (s *Service) findHandler(err error) ErrorHandler {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.handlers {
		if h.CanHandle(err) {
			return h
		}
	}
	return nil
}

func (s *Service) modifierSnapshot() []RequestModifier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modifiers
}

// recoverable reports whether a failure kind may be claimed by a handler.
// Malformed responses, missing bodies, and decode failures are terminal.
func recoverable(err error) bool {
	return IsErrorType(err, TransportError) || IsErrorType(err, ValidationError)
}

// headerName returns the stored key matching name case-insensitively
func headerName(headers map[string]string, name string) (string, bool) {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}

const maskValue = "***"

// sensitiveHeaders lists credential-bearing header names masked in payload logs
var sensitiveHeaders = []string{
	HeaderAuthorization,
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
}

func isSensitiveHeader(name string) bool {
	for _, s := range sensitiveHeaders {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

// redactHeaders returns a copy of headers with sensitive values masked
func redactHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if isSensitiveHeader(k) {
			out[k] = maskValue
			continue
		}
		out[k] = v
	}
	return out
}

// logRequest logs the outgoing request
func (s *Service) logRequest(req *Request) {
	logEvent := s.logger.Info().
		Str("direction", "outbound").
		Str("method", req.Method).
		Str("url", req.URL)

	logEvent.Msg("network service request")

	if s.config.LogPayloads {
		payload := s.logger.Debug().Interface("headers", redactHeaders(req.Headers))
		if len(req.Body) > 0 {
			payload.Bytes("body", capPayload(req.Body, s.config.MaxPayloadLogBytes))
		}
		payload.Msg("network service request payload")
	}
}

// logResponse logs the incoming response
func (s *Service) logResponse(resp *Response, body []byte, elapsed time.Duration) {
	s.logger.Info().
		Str("direction", "inbound").
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("network service response")

	if s.config.LogPayloads && len(body) > 0 {
		s.logger.Debug().
			Bytes("body", capPayload(body, s.config.MaxPayloadLogBytes)).
			Msg("network service response payload")
	}
}

// logRecovery logs the handler-gated retry
func (s *Service) logRecovery(err error) {
	s.logger.Warn().
		Err(err).
		Msg("recovering from request failure, will retry once")
}

func capPayload(b []byte, maxBytes int) []byte {
	if maxBytes > 0 && len(b) > maxBytes {
		return b[:maxBytes]
	}
	return b
}
