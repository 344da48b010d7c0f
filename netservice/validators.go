package netservice

import "fmt"

// AcceptSuccess returns a validator accepting any 2xx status. It is the
// default used by the typed request operations when the caller supplies no
// validators.
func AcceptSuccess() ResponseValidator {
	return ResponseValidatorFunc(func(resp *Response, body []byte) error {
		if !IsSuccessStatus(resp.StatusCode) {
			return &UnexpectedStatusError{StatusCode: resp.StatusCode, Body: body}
		}
		return nil
	})
}

// ExpectStatus returns a validator accepting only the listed status codes
func ExpectStatus(codes ...int) ResponseValidator {
	return ResponseValidatorFunc(func(resp *Response, body []byte) error {
		for _, code := range codes {
			if resp.StatusCode == code {
				return nil
			}
		}
		return &UnexpectedStatusError{StatusCode: resp.StatusCode, Body: body}
	})
}

// RequireHeader returns a validator rejecting responses that lack the
// named header
func RequireHeader(name string) ResponseValidator {
	return ResponseValidatorFunc(func(resp *Response, _ []byte) error {
		if resp.Headers.Get(name) == "" {
			return fmt.Errorf("missing required header %s", name)
		}
		return nil
	})
}
