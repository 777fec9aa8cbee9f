package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joshlewis24/cinebook/internal/domain"
)

func (s *Store) InsertMovie(ctx context.Context, m domain.Movie) error {
	const op = "mongorepo.InsertMovie"

	if _, err := s.movies().InsertOne(ctx, m); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (s *Store) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	const op = "mongorepo.GetMovie"

	var m domain.Movie
	if err := s.movies().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&m); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &m, nil
}

func (s *Store) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	const op = "mongorepo.ListMovies"

	cur, err := s.movies().Find(ctx, bson.D{})
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	var movies []domain.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return movies, nil
}
