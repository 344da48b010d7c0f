package netservice

import "sync"

// TokenNotifier is the process-wide credential refresh channel boundary.
// Subscribe registers a callback invoked with each new token value and
// returns a function that removes the subscription.
type TokenNotifier interface {
	Subscribe(fn func(token string)) (unsubscribe func())
}

// Broadcaster is an in-process TokenNotifier. Publish delivers the token
// to every current subscriber synchronously; the latest published value
// always wins, there is no queueing.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]func(string)
	next int
}

// NewBroadcaster creates an empty broadcaster
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]func(string))}
}

// Subscribe registers fn and returns its removal function. Removal is
// idempotent.
func (b *Broadcaster) Subscribe(fn func(token string)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers token to all current subscribers
func (b *Broadcaster) Publish(token string) {
	b.mu.Lock()
	fns := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(token)
	}
}

// Subscription is an explicit handle on a token watch. Closing it detaches
// the service from the notifier; Close is safe to call more than once.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Close tears down the subscription
func (s *Subscription) Close() {
	s.once.Do(s.cancel)
}

// WatchTokens subscribes the service to notifier. Each published token
// overwrites the service credential, so requests built after the update
// carry the new value. The returned subscription must be closed when the
// service is discarded.
func (s *Service) WatchTokens(notifier TokenNotifier) *Subscription {
	cancel := notifier.Subscribe(func(token string) {
		s.SetToken(token)
	})
	return &Subscription{cancel: cancel}
}
