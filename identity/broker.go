package identity

import (
	"sync"

	"github.com/emmanuel-nwafor/Fore-made-webApp/models"
)

// AuthState is one transition of the session stream: signed out, or signed
// in with the asserted session.
type AuthState struct {
	SignedIn bool
	Session  *models.Session
}

// Broker fans auth-state transitions out to subscribers. Subscribers that
// unsubscribe never receive again, which is the stale-callback guard: a view
// that tears down drops its subscription and an in-flight sign-in result
// cannot reach it.
type Broker struct {
	mu   sync.Mutex
	subs map[chan AuthState]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[chan AuthState]struct{})}
}

// Subscribe returns a state channel and an unsubscribe func. Calling
// unsubscribe is idempotent and closes the channel.
func (b *Broker) Subscribe() (<-chan AuthState, func()) {
	ch := make(chan AuthState, 4)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers st to every live subscriber without blocking: a
// subscriber that stopped draining misses transitions rather than stalling
// the publisher.
func (b *Broker) Publish(st AuthState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- st:
		default:
		}
	}
}
