package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/joshlewis24/cinebook/internal/domain"
)

// Store is the read-only slice of the entity store the aggregations run over.
// Each query re-reads the collections it needs; the engine keeps no state.
type Store interface {
	ListMovies(ctx context.Context) ([]domain.Movie, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
}

type Config struct {
	// TopUsersMinBookings is the exclusive lower bound for TopUsers:
	// a user qualifies with strictly more bookings than this.
	TopUsersMinBookings int
}

type Service struct {
	store Store
	cfg   Config
}

func New(store Store, cfg Config) *Service {
	if cfg.TopUsersMinBookings <= 0 {
		cfg.TopUsersMinBookings = 2
	}

	return &Service{
		store: store,
		cfg:   cfg,
	}
}

// MovieBookingTotals groups bookings by movie, counting bookings and summing
// seats, left-joined to the movie for title/genre. A booking whose movie
// record is missing still produces a row, with nil title and genre.
// Sorted by totalBookings descending, ties by movieId ascending.
func (s *Service) MovieBookingTotals(ctx context.Context) ([]domain.MovieBookingTotal, error) {
	const op = "service.analytics.MovieBookingTotals"

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	movies, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	movieByID := make(map[string]domain.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	totals := make(map[string]*domain.MovieBookingTotal)
	for _, b := range bookings {
		row, ok := totals[b.MovieID]
		if !ok {
			row = &domain.MovieBookingTotal{MovieID: b.MovieID}
			if m, ok := movieByID[b.MovieID]; ok {
				title, genre := m.Title, m.Genre
				row.Title = &title
				row.Genre = &genre
			}
			totals[b.MovieID] = row
		}
		row.TotalBookings++
		row.TotalSeats += b.Seats
	}

	out := make([]domain.MovieBookingTotal, 0, len(totals))
	for _, row := range totals {
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].MovieID < out[j].MovieID
	})

	return out, nil
}

// UserBookingHistories groups bookings by user, each entry inner-joined to
// its user and movie: a booking whose user or movie record is missing is
// dropped. Entries within a history are ordered by bookingDate, then
// bookingId; histories are sorted by totalBookings descending, ties by
// userId ascending.
func (s *Service) UserBookingHistories(ctx context.Context) ([]domain.UserBookingHistory, error) {
	const op = "service.analytics.UserBookingHistories"

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	movies, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	userByID := make(map[string]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	movieByID := make(map[string]domain.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	histories := make(map[string]*domain.UserBookingHistory)
	for _, b := range bookings {
		u, ok := userByID[b.UserID]
		if !ok {
			continue
		}
		m, ok := movieByID[b.MovieID]
		if !ok {
			continue
		}

		h, ok := histories[u.ID]
		if !ok {
			h = &domain.UserBookingHistory{
				UserID: u.ID,
				Name:   u.Name,
				Email:  u.Email,
			}
			histories[u.ID] = h
		}
		h.Bookings = append(h.Bookings, domain.BookingEntry{
			BookingID:   b.ID,
			MovieID:     b.MovieID,
			MovieTitle:  m.Title,
			BookingDate: b.BookingDate,
			Seats:       b.Seats,
			Status:      b.Status,
		})
		h.TotalBookings++
	}

	out := make([]domain.UserBookingHistory, 0, len(histories))
	for _, h := range histories {
		sort.Slice(h.Bookings, func(i, j int) bool {
			if !h.Bookings[i].BookingDate.Equal(h.Bookings[j].BookingDate) {
				return h.Bookings[i].BookingDate.Before(h.Bookings[j].BookingDate)
			}
			return h.Bookings[i].BookingID < h.Bookings[j].BookingID
		})
		out = append(out, *h)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].UserID < out[j].UserID
	})

	return out, nil
}

// TopUsers counts bookings per user and keeps users with strictly more than
// the configured threshold, inner-joined to the user record. Sorted by
// totalBookings descending, ties by userId ascending.
func (s *Service) TopUsers(ctx context.Context) ([]domain.TopUser, error) {
	const op = "service.analytics.TopUsers"

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	userByID := make(map[string]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.UserID]++
	}

	out := make([]domain.TopUser, 0)
	for userID, n := range counts {
		if n <= s.cfg.TopUsersMinBookings {
			continue
		}
		u, ok := userByID[userID]
		if !ok {
			continue
		}
		out = append(out, domain.TopUser{
			UserID:        u.ID,
			Name:          u.Name,
			Email:         u.Email,
			TotalBookings: n,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].UserID < out[j].UserID
	})

	return out, nil
}

// GenreTotals inner-joins each booking to its movie for the genre, then sums
// seats and counts bookings per genre. Bookings referencing a missing movie
// are dropped. Sorted by totalSeatsBooked descending, ties by genre ascending.
func (s *Service) GenreTotals(ctx context.Context) ([]domain.GenreTotal, error) {
	const op = "service.analytics.GenreTotals"

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	movies, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	movieByID := make(map[string]domain.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	totals := make(map[string]*domain.GenreTotal)
	for _, b := range bookings {
		m, ok := movieByID[b.MovieID]
		if !ok {
			continue
		}

		row, ok := totals[m.Genre]
		if !ok {
			row = &domain.GenreTotal{Genre: m.Genre}
			totals[m.Genre] = row
		}
		row.TotalSeatsBooked += b.Seats
		row.BookingsCount++
	}

	out := make([]domain.GenreTotal, 0, len(totals))
	for _, row := range totals {
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSeatsBooked != out[j].TotalSeatsBooked {
			return out[i].TotalSeatsBooked > out[j].TotalSeatsBooked
		}
		return out[i].Genre < out[j].Genre
	})

	return out, nil
}

// ActiveBookings projects bookings with status Booked, inner-joined to both
// the user and the movie. Sorted by bookingDate descending (most recent
// first), ties by bookingId ascending.
func (s *Service) ActiveBookings(ctx context.Context) ([]domain.ActiveBooking, error) {
	const op = "service.analytics.ActiveBookings"

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	movies, err := s.store.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrQuery)
	}

	userByID := make(map[string]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	movieByID := make(map[string]domain.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	out := make([]domain.ActiveBooking, 0)
	for _, b := range bookings {
		if b.Status != domain.BookingBooked {
			continue
		}
		u, ok := userByID[b.UserID]
		if !ok {
			continue
		}
		m, ok := movieByID[b.MovieID]
		if !ok {
			continue
		}

		out = append(out, domain.ActiveBooking{
			BookingID:   b.ID,
			BookingDate: b.BookingDate,
			Seats:       b.Seats,
			Status:      b.Status,
			User: domain.BookingUser{
				UserID: u.ID,
				Name:   u.Name,
				Email:  u.Email,
			},
			Movie: domain.BookingMovie{
				MovieID: m.ID,
				Title:   m.Title,
				Genre:   m.Genre,
			},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].BookingDate.Equal(out[j].BookingDate) {
			return out[i].BookingDate.After(out[j].BookingDate)
		}
		return out[i].BookingID < out[j].BookingID
	})

	return out, nil
}
