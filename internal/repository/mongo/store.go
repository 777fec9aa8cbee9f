package mongorepo

import (
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	collMovies   = "movies"
	collUsers    = "users"
	collBookings = "bookings"
)

// Store is the entity store over a Mongo database. Records are keyed by a
// caller-assigned string _id, so a duplicate insert is rejected atomically by
// the unique index on _id rather than by a read-then-write check.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) movies() *mongo.Collection   { return s.db.Collection(collMovies) }
func (s *Store) users() *mongo.Collection    { return s.db.Collection(collUsers) }
func (s *Store) bookings() *mongo.Collection { return s.db.Collection(collBookings) }
