package netservice

import (
	"bytes"
	"context"
	"io"
	nethttp "net/http"
	"time"
)

// HTTPTransport implements the Transport boundary over net/http. It
// performs a single exchange per call; retries, validation, and recovery
// live in the Service.
type HTTPTransport struct {
	httpClient *nethttp.Client
}

// Ensure HTTPTransport implements the interface
var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport with the given request timeout
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// NewHTTPTransportWithClient creates a transport over a caller-supplied
// HTTP client (custom round trippers, TLS configuration, proxies).
func NewHTTPTransportWithClient(client *nethttp.Client) *HTTPTransport {
	return &HTTPTransport{httpClient: client}
}

// Do performs the exchange described by req and returns the body bytes and
// response metadata. Non-2xx statuses are responses, not errors; only
// failures to complete the exchange are reported as errors.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) ([]byte, *Response, error) {
	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, err
	}

	return body, &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}, nil
}

// buildRequest constructs an *http.Request from the canonical form
func (t *HTTPTransport) buildRequest(ctx context.Context, req *Request) (*nethttp.Request, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Default Content-Type when a body is present and none was set
	if httpReq.Header.Get("Content-Type") == "" && req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}
