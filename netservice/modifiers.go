package netservice

import (
	"context"

	gonetkittrace "github.com/gaborage/go-netkit/trace"
)

// HeaderModifier returns a modifier that sets the given headers on every
// request. Existing values for the same keys are overwritten.
func HeaderModifier(headers map[string]string) RequestModifier {
	return RequestModifierFunc(func(_ context.Context, req *Request) *Request {
		for key, value := range headers {
			req.Headers[key] = value
		}
		return req
	})
}

// BearerSeedModifier returns a modifier that seeds an empty Authorization
// header when none is present. The service only injects the credential
// into requests that already carry the header, so registering this
// modifier opts every request into authentication.
func BearerSeedModifier() RequestModifier {
	return RequestModifierFunc(func(_ context.Context, req *Request) *Request {
		if _, ok := headerName(req.Headers, HeaderAuthorization); !ok {
			req.Headers[HeaderAuthorization] = ""
		}
		return req
	})
}

// TraceIDModifier returns a modifier that adds an X-Request-ID header from
// the context, generating one when absent. An ID already set on the
// request is preserved.
func TraceIDModifier() RequestModifier {
	return RequestModifierFunc(func(ctx context.Context, req *Request) *Request {
		if _, ok := headerName(req.Headers, gonetkittrace.HeaderXRequestID); !ok {
			req.Headers[gonetkittrace.HeaderXRequestID] = gonetkittrace.EnsureRequestID(ctx)
		}
		return req
	})
}

// TraceContextModifier returns a modifier that propagates W3C trace
// context headers (traceparent/tracestate) from the context, generating a
// traceparent when none is present.
func TraceContextModifier() RequestModifier {
	return RequestModifierFunc(func(ctx context.Context, req *Request) *Request {
		if _, ok := headerName(req.Headers, gonetkittrace.HeaderTraceParent); !ok {
			if tp, found := gonetkittrace.TraceParentFromContext(ctx); found {
				req.Headers[gonetkittrace.HeaderTraceParent] = tp
			} else {
				req.Headers[gonetkittrace.HeaderTraceParent] = gonetkittrace.GenerateTraceParent()
			}
		}
		if _, ok := headerName(req.Headers, gonetkittrace.HeaderTraceState); !ok {
			if ts, found := gonetkittrace.TraceStateFromContext(ctx); found {
				req.Headers[gonetkittrace.HeaderTraceState] = ts
			}
		}
		return req
	})
}
