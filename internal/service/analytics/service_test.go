package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshlewis24/cinebook/internal/domain"
)

type fakeStore struct {
	movies   []domain.Movie
	users    []domain.User
	bookings []domain.Booking

	moviesErr   error
	usersErr    error
	bookingsErr error
}

func (f *fakeStore) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	return f.movies, f.moviesErr
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	return f.users, f.usersErr
}

func (f *fakeStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, f.bookingsErr
}

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 12, 0, 0, 0, time.UTC)
}

func booking(id, userID, movieID string, seats int, status domain.BookingStatus, date time.Time) domain.Booking {
	return domain.Booking{
		ID:          id,
		UserID:      userID,
		MovieID:     movieID,
		BookingDate: date,
		Seats:       seats,
		Status:      status,
	}
}

func testStore() *fakeStore {
	return &fakeStore{
		movies: []domain.Movie{
			{ID: "M1", Title: "Dune", Genre: "SciFi"},
			{ID: "M2", Title: "Heat", Genre: "Crime"},
			{ID: "M3", Title: "Alien", Genre: "SciFi"},
		},
		users: []domain.User{
			{ID: "U1", Name: "Ada", Email: "ada@example.com"},
			{ID: "U2", Name: "Ben", Email: "ben@example.com"},
		},
		bookings: []domain.Booking{
			booking("B1", "U1", "M1", 3, domain.BookingBooked, day(1)),
			booking("B2", "U1", "M2", 2, domain.BookingBooked, day(2)),
			booking("B3", "U1", "M3", 1, domain.BookingCancelled, day(3)),
			booking("B4", "U2", "M1", 4, domain.BookingBooked, day(4)),
		},
	}
}

func TestMovieBookingTotals(t *testing.T) {
	svc := New(testStore(), Config{})

	rows, err := svc.MovieBookingTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// M1 has two bookings, the rest one each; ties ordered by movie id.
	require.Equal(t, "M1", rows[0].MovieID)
	require.Equal(t, 2, rows[0].TotalBookings)
	require.Equal(t, 7, rows[0].TotalSeats)
	require.NotNil(t, rows[0].Title)
	require.Equal(t, "Dune", *rows[0].Title)
	require.Equal(t, "M2", rows[1].MovieID)
	require.Equal(t, "M3", rows[2].MovieID)
}

func TestMovieBookingTotalsSingleBooking(t *testing.T) {
	store := &fakeStore{
		movies:   []domain.Movie{{ID: "M1", Title: "Dune", Genre: "SciFi"}},
		users:    []domain.User{{ID: "U1", Name: "Ada", Email: "ada@example.com"}},
		bookings: []domain.Booking{booking("B1", "U1", "M1", 3, domain.BookingBooked, day(1))},
	}
	svc := New(store, Config{})

	rows, err := svc.MovieBookingTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "M1", rows[0].MovieID)
	require.Equal(t, "Dune", *rows[0].Title)
	require.Equal(t, 1, rows[0].TotalBookings)
	require.Equal(t, 3, rows[0].TotalSeats)
}

func TestMovieBookingTotalsKeepsMissingMovie(t *testing.T) {
	store := testStore()
	store.bookings = append(store.bookings, booking("B5", "U2", "M99", 5, domain.BookingBooked, day(5)))
	svc := New(store, Config{})

	rows, err := svc.MovieBookingTotals(context.Background())
	require.NoError(t, err)

	var orphan *domain.MovieBookingTotal
	for i := range rows {
		if rows[i].MovieID == "M99" {
			orphan = &rows[i]
		}
	}
	require.NotNil(t, orphan, "booking for a missing movie must still produce a row")
	require.Nil(t, orphan.Title)
	require.Nil(t, orphan.Genre)
	require.Equal(t, 5, orphan.TotalSeats)
}

func TestMovieBookingTotalsSeatSum(t *testing.T) {
	store := testStore()
	store.bookings = append(store.bookings, booking("B5", "U2", "M99", 5, domain.BookingBooked, day(5)))
	svc := New(store, Config{})

	rows, err := svc.MovieBookingTotals(context.Background())
	require.NoError(t, err)

	wantSeats := 0
	for _, b := range store.bookings {
		wantSeats += b.Seats
	}
	gotSeats := 0
	for _, r := range rows {
		gotSeats += r.TotalSeats
	}
	require.Equal(t, wantSeats, gotSeats, "totals must conserve the overall seat sum")
}

func TestUserBookingHistories(t *testing.T) {
	svc := New(testStore(), Config{})

	rows, err := svc.UserBookingHistories(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "U1", rows[0].UserID)
	require.Equal(t, 3, rows[0].TotalBookings)
	require.Equal(t, "Ada", rows[0].Name)
	require.Len(t, rows[0].Bookings, 3)
	// entries ordered by booking date
	require.Equal(t, "B1", rows[0].Bookings[0].BookingID)
	require.Equal(t, "Dune", rows[0].Bookings[0].MovieTitle)
	require.Equal(t, "B3", rows[0].Bookings[2].BookingID)

	require.Equal(t, "U2", rows[1].UserID)
	require.Equal(t, 1, rows[1].TotalBookings)
}

func TestUserBookingHistoriesExcludesBrokenJoins(t *testing.T) {
	store := testStore()
	store.bookings = append(store.bookings,
		booking("B5", "U99", "M1", 1, domain.BookingBooked, day(5)),
		booking("B6", "U2", "M99", 1, domain.BookingBooked, day(6)),
	)
	svc := New(store, Config{})

	rows, err := svc.UserBookingHistories(context.Background())
	require.NoError(t, err)

	for _, h := range rows {
		require.NotEqual(t, "U99", h.UserID)
		for _, e := range h.Bookings {
			require.NotEqual(t, "B5", e.BookingID)
			require.NotEqual(t, "B6", e.BookingID)
		}
	}
}

func TestTopUsersThreshold(t *testing.T) {
	store := testStore()
	svc := New(store, Config{})

	// U1 has exactly 3 bookings (>2), U2 only 1.
	rows, err := svc.TopUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "U1", rows[0].UserID)
	require.Equal(t, "ada@example.com", rows[0].Email)
	require.Equal(t, 3, rows[0].TotalBookings)
}

func TestTopUsersBoundary(t *testing.T) {
	store := &fakeStore{
		movies: []domain.Movie{{ID: "M1", Title: "Dune", Genre: "SciFi"}},
		users:  []domain.User{{ID: "U1", Name: "Ada", Email: "ada@example.com"}},
		bookings: []domain.Booking{
			booking("B1", "U1", "M1", 1, domain.BookingBooked, day(1)),
			booking("B2", "U1", "M1", 1, domain.BookingBooked, day(2)),
		},
	}
	svc := New(store, Config{})

	rows, err := svc.TopUsers(context.Background())
	require.NoError(t, err)
	require.Empty(t, rows, "two bookings must not qualify")

	store.bookings = append(store.bookings, booking("B3", "U1", "M1", 1, domain.BookingBooked, day(3)))

	rows, err = svc.TopUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1, "the third booking must push the user over the threshold")
}

func TestTopUsersExcludesMissingUser(t *testing.T) {
	store := testStore()
	for i := 0; i < 3; i++ {
		store.bookings = append(store.bookings,
			booking("X"+string(rune('0'+i)), "U99", "M1", 1, domain.BookingBooked, day(10+i)))
	}
	svc := New(store, Config{})

	rows, err := svc.TopUsers(context.Background())
	require.NoError(t, err)
	for _, r := range rows {
		require.NotEqual(t, "U99", r.UserID)
	}
}

func TestGenreTotals(t *testing.T) {
	store := testStore()
	store.bookings = append(store.bookings, booking("B5", "U2", "M99", 9, domain.BookingBooked, day(5)))
	svc := New(store, Config{})

	rows, err := svc.GenreTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2, "booking for a missing movie contributes to no genre")

	// SciFi collects B1, B3 and B4 (cancelled bookings still count here).
	require.Equal(t, "SciFi", rows[0].Genre)
	require.Equal(t, 8, rows[0].TotalSeatsBooked)
	require.Equal(t, 3, rows[0].BookingsCount)
	require.Equal(t, "Crime", rows[1].Genre)
	require.Equal(t, 2, rows[1].TotalSeatsBooked)
	require.Equal(t, 1, rows[1].BookingsCount)
}

func TestActiveBookings(t *testing.T) {
	store := testStore()
	store.bookings = append(store.bookings,
		booking("B5", "U99", "M1", 1, domain.BookingBooked, day(5)),
		booking("B6", "U2", "M99", 1, domain.BookingBooked, day(6)),
	)
	svc := New(store, Config{})

	rows, err := svc.ActiveBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3, "cancelled and broken-join bookings are excluded")

	// most recent first
	require.Equal(t, "B4", rows[0].BookingID)
	require.Equal(t, "B2", rows[1].BookingID)
	require.Equal(t, "B1", rows[2].BookingID)

	for _, r := range rows {
		require.Equal(t, domain.BookingBooked, r.Status)
	}

	require.Equal(t, domain.BookingUser{UserID: "U2", Name: "Ben", Email: "ben@example.com"}, rows[0].User)
	require.Equal(t, domain.BookingMovie{MovieID: "M1", Title: "Dune", Genre: "SciFi"}, rows[0].Movie)
}

func TestActiveBookingsTieBreak(t *testing.T) {
	store := &fakeStore{
		movies: []domain.Movie{{ID: "M1", Title: "Dune", Genre: "SciFi"}},
		users:  []domain.User{{ID: "U1", Name: "Ada", Email: "ada@example.com"}},
		bookings: []domain.Booking{
			booking("B2", "U1", "M1", 1, domain.BookingBooked, day(1)),
			booking("B1", "U1", "M1", 1, domain.BookingBooked, day(1)),
		},
	}
	svc := New(store, Config{})

	rows, err := svc.ActiveBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "B1", rows[0].BookingID)
	require.Equal(t, "B2", rows[1].BookingID)
}

func TestEmptyStore(t *testing.T) {
	svc := New(&fakeStore{}, Config{})
	ctx := context.Background()

	totals, err := svc.MovieBookingTotals(ctx)
	require.NoError(t, err)
	require.NotNil(t, totals)
	require.Empty(t, totals)

	histories, err := svc.UserBookingHistories(ctx)
	require.NoError(t, err)
	require.NotNil(t, histories)
	require.Empty(t, histories)

	top, err := svc.TopUsers(ctx)
	require.NoError(t, err)
	require.NotNil(t, top)
	require.Empty(t, top)

	genres, err := svc.GenreTotals(ctx)
	require.NoError(t, err)
	require.NotNil(t, genres)
	require.Empty(t, genres)

	active, err := svc.ActiveBookings(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Empty(t, active)
}

func TestQueryError(t *testing.T) {
	boom := errors.New("connection reset")
	ctx := context.Background()

	for name, store := range map[string]*fakeStore{
		"bookings": {bookingsErr: boom},
		"movies":   {moviesErr: boom},
		"users":    {usersErr: boom},
	} {
		svc := New(store, Config{})

		if store.usersErr == nil {
			_, err := svc.MovieBookingTotals(ctx)
			require.ErrorIs(t, err, ErrQuery, name)

			_, err = svc.GenreTotals(ctx)
			require.ErrorIs(t, err, ErrQuery, name)
		}

		if store.moviesErr == nil {
			_, err := svc.TopUsers(ctx)
			require.ErrorIs(t, err, ErrQuery, name)
		}

		_, err := svc.UserBookingHistories(ctx)
		require.ErrorIs(t, err, ErrQuery, name)

		_, err = svc.ActiveBookings(ctx)
		require.ErrorIs(t, err, ErrQuery, name)
	}
}
