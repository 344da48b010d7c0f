package netservice

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// The typed facade is built only on Service.RequestData. Each operation
// defaults its validator list to accept-any-2xx when the caller supplies
// none, wraps decode-stage failures as decoding errors, and passes every
// other error kind through untouched.

// RequestObject issues the request and decodes the body as a single JSON
// value of type T.
func RequestObject[T any](ctx context.Context, s *Service, provider RequestProvider, validators ...ResponseValidator) (T, error) {
	var result T
	body, _, err := s.RequestData(ctx, provider, defaultValidators(validators)...)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, NewDecodingError("failed to decode object", err)
	}
	return result, nil
}

// RequestObjects issues the request and decodes the body as a JSON array
// of T.
func RequestObjects[T any](ctx context.Context, s *Service, provider RequestProvider, validators ...ResponseValidator) ([]T, error) {
	body, _, err := s.RequestData(ctx, provider, defaultValidators(validators)...)
	if err != nil {
		return nil, err
	}
	var results []T
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, NewDecodingError("failed to decode object list", err)
	}
	return results, nil
}

// RequestString issues the request and interprets the body under the
// service's configured text encoding.
func RequestString(ctx context.Context, s *Service, provider RequestProvider, validators ...ResponseValidator) (string, error) {
	result, _, err := RequestStringWithResponse(ctx, s, provider, validators...)
	return result, err
}

// RequestStringWithResponse is RequestString plus the response metadata.
func RequestStringWithResponse(ctx context.Context, s *Service, provider RequestProvider, validators ...ResponseValidator) (string, *Response, error) {
	body, resp, err := s.RequestData(ctx, provider, defaultValidators(validators)...)
	if err != nil {
		return "", nil, err
	}
	result, err := decodeString(body, s.config.TextEncoding)
	if err != nil {
		return "", nil, err
	}
	return result, resp, nil
}

// RequestVoid issues the request and discards the body on success.
func RequestVoid(ctx context.Context, s *Service, provider RequestProvider, validators ...ResponseValidator) error {
	_, _, err := s.RequestData(ctx, provider, defaultValidators(validators)...)
	return err
}

// defaultValidators falls back to accept-any-2xx when the caller supplied
// no validators
func defaultValidators(validators []ResponseValidator) []ResponseValidator {
	if len(validators) == 0 {
		return []ResponseValidator{AcceptSuccess()}
	}
	return validators
}

// decodeString interprets body under enc. UTF-8 input is checked directly;
// other charsets go through the encoding's decoder.
func decodeString(body []byte, enc encoding.Encoding) (string, error) {
	if enc == nil || enc == unicode.UTF8 {
		if !utf8.Valid(body) {
			return "", NewStringDecodingError("UTF-8", nil)
		}
		return string(body), nil
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", NewStringDecodingError(charsetName(enc), err)
	}
	return string(decoded), nil
}

func charsetName(enc encoding.Encoding) string {
	type named interface{ String() string }
	if n, ok := enc.(named); ok {
		return n.String()
	}
	return "configured charset"
}
