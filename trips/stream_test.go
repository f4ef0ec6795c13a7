package trips

import (
	"testing"
	"time"

	"pondilore/models"
)

func snap(ids ...string) []models.GeneratedTrip {
	out := make([]models.GeneratedTrip, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.GeneratedTrip{TripID: id, UserID: "u1"})
	}
	return out
}

func TestBrokerDeliversSnapshots(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("u1")
	defer sub.Unsubscribe()

	b.Publish("u1", snap("t1"))

	select {
	case got := <-sub.C:
		if len(got) != 1 || got[0].TripID != "t1" {
			t.Fatalf("got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for snapshot")
	}
}

func TestBrokerIsolatesOwners(t *testing.T) {
	b := NewBroker()
	mine := b.Subscribe("u1")
	theirs := b.Subscribe("u2")
	defer mine.Unsubscribe()
	defer theirs.Unsubscribe()

	b.Publish("u1", snap("t1"))

	select {
	case <-theirs.C:
		t.Fatal("u2 must not receive u1's snapshot")
	case <-time.After(50 * time.Millisecond):
	}

	select {
	case <-mine.C:
	case <-time.After(time.Second):
		t.Fatal("u1's snapshot lost")
	}
}

func TestBrokerLatestWins(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("u1")
	defer sub.Unsubscribe()

	// consumer is slow: two publishes before a read
	b.Publish("u1", snap("t1"))
	b.Publish("u1", snap("t1", "t2"))

	select {
	case got := <-sub.C:
		if len(got) != 2 {
			t.Fatalf("expected the latest snapshot, got %d trips", len(got))
		}
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

// A connection's initial snapshot is delivered on its own channel, not
// broadcast, so peer sessions of the same owner never see it.
func TestInitialSnapshotStaysPrivate(t *testing.T) {
	b := NewBroker()
	peer := b.Subscribe("u1")
	defer peer.Unsubscribe()

	fresh := b.Subscribe("u1")
	defer fresh.Unsubscribe()
	fresh.C <- snap("t1")

	select {
	case <-peer.C:
		t.Fatal("peer session must not receive another connection's initial snapshot")
	case <-time.After(50 * time.Millisecond):
	}

	select {
	case got := <-fresh.C:
		if len(got) != 1 || got[0].TripID != "t1" {
			t.Fatalf("got %v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("initial snapshot lost")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker()
	sub := b.Subscribe("u1")
	sub.Unsubscribe()

	if _, open := <-sub.C; open {
		t.Fatal("channel must be closed on unsubscribe")
	}

	// publishing after teardown must not panic
	b.Publish("u1", snap("t1"))

	// double unsubscribe is a no-op
	sub.Unsubscribe()
}
