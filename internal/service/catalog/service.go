package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/joshlewis24/cinebook/internal/domain"
	"github.com/joshlewis24/cinebook/internal/repository"
)

// Store is the slice of the entity store the catalog needs. Inserts must
// reject a duplicate id atomically with repository.ErrConflict.
type Store interface {
	InsertMovie(ctx context.Context, m domain.Movie) error
	InsertUser(ctx context.Context, u domain.User) error
	InsertBooking(ctx context.Context, b domain.Booking) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetMovie(ctx context.Context, id string) (*domain.Movie, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// CreateMovie inserts a movie record.
//
// Returns:
//   - *domain.Movie: the created record.
//   - error: *ValidationError if id or title is missing.
//   - error: catalog.ErrDuplicateID if the id is already taken.
func (s *Service) CreateMovie(ctx context.Context, m domain.Movie) (*domain.Movie, error) {
	const op = "service.catalog.CreateMovie"

	if m.ID == "" {
		return nil, errMissingField("id")
	}
	if m.Title == "" {
		return nil, errMissingField("title")
	}

	if err := s.store.InsertMovie(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, ErrDuplicateID)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &m, nil
}

// CreateUser inserts a user record. JoinedAt defaults to the current time
// when the caller leaves it unset.
func (s *Service) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	const op = "service.catalog.CreateUser"

	if u.ID == "" {
		return nil, errMissingField("id")
	}
	if u.Name == "" {
		return nil, errMissingField("name")
	}
	if u.Email == "" {
		return nil, errMissingField("email")
	}

	if u.JoinedAt.IsZero() {
		u.JoinedAt = time.Now().UTC()
	}

	if err := s.store.InsertUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, ErrDuplicateID)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &u, nil
}

// CreateBooking inserts a booking after verifying that the referenced user
// and movie both exist. The two lookups run concurrently; the insert happens
// only when both succeed, so a failed reference never leaves a partial write.
//
// Returns:
//   - *domain.Booking: the created record.
//   - error: *ValidationError if a required field is missing or invalid.
//   - error: catalog.ErrUserNotFound / catalog.ErrMovieNotFound.
//   - error: catalog.ErrDuplicateID if the booking id is already taken.
func (s *Service) CreateBooking(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	const op = "service.catalog.CreateBooking"

	if b.ID == "" {
		return nil, errMissingField("id")
	}
	if b.UserID == "" {
		return nil, errMissingField("userId")
	}
	if b.MovieID == "" {
		return nil, errMissingField("movieId")
	}
	if b.Seats <= 0 {
		return nil, &ValidationError{Msg: "seats must be a positive integer"}
	}

	if b.Status == "" {
		b.Status = domain.BookingBooked
	} else if !b.Status.Valid() {
		return nil, &ValidationError{Msg: "invalid status: " + string(b.Status)}
	}

	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now().UTC()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if _, err := s.store.GetUser(gctx, b.UserID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrUserNotFound
			}

			return err
		}

		return nil
	})

	g.Go(func() error {
		if _, err := s.store.GetMovie(gctx, b.MovieID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrMovieNotFound
			}

			return err
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if err := s.store.InsertBooking(ctx, b); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%s:%w", op, ErrDuplicateID)
		}

		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &b, nil
}
