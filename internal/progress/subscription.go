package progress

import "strings"

// subscriptionChannel is the minimal surface of [cm/internal/logx.Subscription]
// this package needs, so it can depend on logx without an import cycle
// concern and tests can supply a bare channel.
type subscriptionChannel interface {
	C() <-chan []byte
}

// SubscriptionAdapter adapts a [cm/internal/logx.Subscription] to [logLines],
// trimming the trailing newline slog's handlers append.
type SubscriptionAdapter struct {
	sub subscriptionChannel
}

// NewSubscriptionAdapter wraps sub for use as a Model's log source.
func NewSubscriptionAdapter(sub subscriptionChannel) *SubscriptionAdapter {
	return &SubscriptionAdapter{sub: sub}
}

// ReadLine blocks for the next entry, returning false once the underlying
// channel closes.
func (a *SubscriptionAdapter) ReadLine() (string, bool) {
	entry, ok := <-a.sub.C()
	if !ok {
		return "", false
	}

	return strings.TrimRight(string(entry), "\n"), true
}
