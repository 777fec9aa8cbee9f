package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joshlewis24/cinebook/internal/domain"
)

func (s *Store) InsertUser(ctx context.Context, u domain.User) error {
	const op = "mongorepo.InsertUser"

	if _, err := s.users().InsertOne(ctx, u); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	const op = "mongorepo.GetUser"

	var u domain.User
	if err := s.users().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&u); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	const op = "mongorepo.ListUsers"

	cur, err := s.users().Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return users, nil
}
