package trips

import (
	"context"
	"log"
	"time"

	"pondilore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the trip persistence gateway over the trips collection. Every
// write notifies the broker so live list subscribers see a fresh snapshot.
type Store struct {
	col    *mongo.Collection
	broker *Broker
}

func NewStore(col *mongo.Collection, broker *Broker) *Store {
	return &Store{col: col, broker: broker}
}

func (s *Store) CreateTrip(ctx context.Context, trip models.GeneratedTrip) error {
	if _, err := s.col.InsertOne(ctx, trip); err != nil {
		return &models.PersistenceError{Op: "create", Err: err}
	}
	s.notify(trip.UserID)
	return nil
}

func (s *Store) GetTrip(ctx context.Context, id string) (models.GeneratedTrip, error) {
	var trip models.GeneratedTrip
	err := s.col.FindOne(ctx, bson.M{"tripid": id}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return models.GeneratedTrip{}, &models.NotFoundError{Kind: "trip", ID: id}
	}
	if err != nil {
		return models.GeneratedTrip{}, &models.PersistenceError{Op: "get", Err: err}
	}
	return trip, nil
}

// ListTrips returns the owner's trips newest-created-first.
func (s *Store) ListTrips(ctx context.Context, ownerID string) ([]models.GeneratedTrip, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}
	defer cursor.Close(ctx)

	var trips []models.GeneratedTrip
	if err := cursor.All(ctx, &trips); err != nil {
		return nil, &models.PersistenceError{Op: "list", Err: err}
	}
	if trips == nil {
		trips = []models.GeneratedTrip{}
	}
	return trips, nil
}

// DeleteTrip removes exactly the owner's trip with the given id. Hard
// delete, no undo.
func (s *Store) DeleteTrip(ctx context.Context, ownerID, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"tripid": id, "user_id": ownerID})
	if err != nil {
		return &models.PersistenceError{Op: "delete", Err: err}
	}
	if res.DeletedCount == 0 {
		return &models.NotFoundError{Kind: "trip", ID: id}
	}
	s.notify(ownerID)
	return nil
}

// notify pushes a fresh newest-first snapshot to the owner's subscribers.
// Best effort: a failed refetch only costs an update, never the write.
func (s *Store) notify(ownerID string) {
	if s.broker == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshot, err := s.ListTrips(ctx, ownerID)
	if err != nil {
		log.Printf("trip list refetch for %s failed: %v", ownerID, err)
		return
	}
	s.broker.Publish(ownerID, snapshot)
}
