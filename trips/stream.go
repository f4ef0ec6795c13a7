package trips

import (
	"sync"

	"pondilore/models"
)

// Subscription is one consumer of an owner's live trip list. C receives a
// fresh newest-first snapshot after every create/delete touching the owner.
// Consumers must call Unsubscribe when done; C is closed on teardown.
type Subscription struct {
	C      chan []models.GeneratedTrip
	owner  string
	broker *Broker
}

func (sub *Subscription) Unsubscribe() {
	sub.broker.unsubscribe(sub)
}

// Broker fans trip-list snapshots out to per-owner subscribers. Delivery is
// latest-wins: a slow consumer skips intermediate snapshots rather than
// blocking the writer.
type Broker struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]bool
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*Subscription]bool)}
}

func (b *Broker) Subscribe(ownerID string) *Subscription {
	sub := &Subscription{
		C:      make(chan []models.GeneratedTrip, 1),
		owner:  ownerID,
		broker: b,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[ownerID] == nil {
		b.subs[ownerID] = make(map[*Subscription]bool)
	}
	b.subs[ownerID][sub] = true
	return sub
}

func (b *Broker) Publish(ownerID string, snapshot []models.GeneratedTrip) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for sub := range b.subs[ownerID] {
		select {
		case sub.C <- snapshot:
		default:
			// replace the stale pending snapshot
			select {
			case <-sub.C:
			default:
			}
			sub.C <- snapshot
		}
	}
}

func (b *Broker) unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if conns := b.subs[sub.owner]; conns != nil && conns[sub] {
		delete(conns, sub)
		close(sub.C)
		if len(conns) == 0 {
			delete(b.subs, sub.owner)
		}
	}
}
