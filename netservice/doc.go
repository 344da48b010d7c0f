// Package netservice provides a typed request pipeline over a pluggable
// HTTP transport, with request modifiers, response validators, and
// handler-gated error recovery.
//
// Pipeline
//   - The descriptor is converted to a canonical Request, modifiers apply
//     in registration order, and a bearer credential is injected into an
//     Authorization header a modifier already seeded.
//   - After the transport call, validators run in order and the chain
//     short-circuits on the first rejection.
//   - On a transport or validation failure the first registered handler
//     whose CanHandle matches runs its recovery, and the request is
//     replayed exactly once. The second outcome is final; there is no
//     backoff and no further recovery, so a handler that cannot actually
//     fix the condition fails fast instead of looping.
//
// Typed operations
//   - RequestObject / RequestObjects decode JSON bodies, RequestString
//     decodes text under the configured charset, RequestVoid discards the
//     body. All of them default to an accept-any-2xx validator.
//
// Credentials
//   - The service holds a single current token, updated directly or
//     through WatchTokens, which subscribes it to a TokenNotifier until
//     the returned subscription is closed.
package netservice
