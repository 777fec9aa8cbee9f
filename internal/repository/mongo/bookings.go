package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joshlewis24/cinebook/internal/domain"
)

func (s *Store) InsertBooking(ctx context.Context, b domain.Booking) error {
	const op = "mongorepo.InsertBooking"

	if _, err := s.bookings().InsertOne(ctx, b); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	const op = "mongorepo.ListBookings"

	cur, err := s.bookings().Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	var bookings []domain.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return bookings, nil
}
