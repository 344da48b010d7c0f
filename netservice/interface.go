package netservice

import (
	"context"
	"maps"
	nethttp "net/http"
	"time"

	"golang.org/x/text/encoding"
)

// HeaderAuthorization is the header the service fills with the bearer token.
const HeaderAuthorization = "Authorization"

// Request is the canonical outgoing-request representation, independent of
// any particular descriptor type.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// NetworkRequest makes Request its own provider, so a literal request can be
// passed anywhere a descriptor is expected.
func (r *Request) NetworkRequest() (*Request, error) {
	return r, nil
}

// Clone returns a copy of the request with its own header map. The body is
// shared; modifiers replace it rather than mutating it in place.
func (r *Request) Clone() *Request {
	c := *r
	c.Headers = make(map[string]string, len(r.Headers))
	maps.Copy(c.Headers, r.Headers)
	return &c
}

// Response is the canonical response metadata produced by the transport.
// It is immutable once produced.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
}

// RequestProvider converts a descriptor value into a canonical request.
type RequestProvider interface {
	NetworkRequest() (*Request, error)
}

// RequestProviderFunc adapts a function to the RequestProvider interface
type RequestProviderFunc func() (*Request, error)

func (f RequestProviderFunc) NetworkRequest() (*Request, error) { return f() }

// RequestModifier mutates an outgoing request before it is sent. Modifiers
// must not perform I/O; they run in registration order and each receives the
// previous modifier's output.
type RequestModifier interface {
	Modify(ctx context.Context, req *Request) *Request
}

// RequestModifierFunc adapts a function to the RequestModifier interface
type RequestModifierFunc func(ctx context.Context, req *Request) *Request

func (f RequestModifierFunc) Modify(ctx context.Context, req *Request) *Request {
	return f(ctx, req)
}

// ResponseValidator inspects a response and its body after a successful
// transport call. Returning a non-nil error rejects the response; the
// service wraps the cause as a validation error.
type ResponseValidator interface {
	Validate(resp *Response, body []byte) error
}

// ResponseValidatorFunc adapts a function to the ResponseValidator interface
type ResponseValidatorFunc func(resp *Response, body []byte) error

func (f ResponseValidatorFunc) Validate(resp *Response, body []byte) error {
	return f(resp, body)
}

// ErrorHandler is a recovery strategy paired with a classification
// predicate. CanHandle must be side-effect-free; Handle may perform I/O
// (e.g. refresh a credential) and is only invoked after CanHandle returned
// true for that exact error value. A successful Handle earns the request
// exactly one retry.
type ErrorHandler interface {
	CanHandle(err error) bool
	Handle(ctx context.Context, err error) error
}

// Transport performs the actual exchange. Given a canonical request it
// returns the raw body bytes and response metadata, or a transport-level
// error. The service layers retries and validation on top of this boundary;
// the transport itself performs a single exchange.
type Transport interface {
	Do(ctx context.Context, req *Request) ([]byte, *Response, error)
}

// Config holds the service configuration
type Config struct {
	Timeout time.Duration
	// BearerScheme is the prefix used when injecting the credential into
	// the Authorization header (default: "Bearer")
	BearerScheme string
	// TextEncoding is the charset used by the string-decoding operations
	// (default: UTF-8)
	TextEncoding encoding.Encoding
	// LogPayloads enables debug-level logging of headers and body payloads
	LogPayloads bool
	// MaxPayloadLogBytes caps the number of body bytes logged when LogPayloads is enabled
	MaxPayloadLogBytes int
}
