package domain

import "time"

// MovieBookingTotal is one row of the per-movie totals view. Title and Genre
// are nil when the referenced movie record is missing (left join).
type MovieBookingTotal struct {
	MovieID       string  `json:"movieId"`
	Title         *string `json:"title"`
	Genre         *string `json:"genre"`
	TotalBookings int     `json:"totalBookings"`
	TotalSeats    int     `json:"totalSeats"`
}

// BookingEntry is a single booking inside a user's history.
type BookingEntry struct {
	BookingID   string        `json:"bookingId"`
	MovieID     string        `json:"movieId"`
	MovieTitle  string        `json:"movieTitle"`
	BookingDate time.Time     `json:"bookingDate"`
	Seats       int           `json:"seats"`
	Status      BookingStatus `json:"status"`
}

type UserBookingHistory struct {
	UserID        string         `json:"userId"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	TotalBookings int            `json:"totalBookings"`
	Bookings      []BookingEntry `json:"bookings"`
}

type TopUser struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	TotalBookings int    `json:"totalBookings"`
}

type GenreTotal struct {
	Genre            string `json:"genre"`
	TotalSeatsBooked int    `json:"totalSeatsBooked"`
	BookingsCount    int    `json:"bookingsCount"`
}

// ActiveBooking is a booking with status Booked, denormalized with its user
// and movie.
type ActiveBooking struct {
	BookingID   string        `json:"bookingId"`
	BookingDate time.Time     `json:"bookingDate"`
	Seats       int           `json:"seats"`
	Status      BookingStatus `json:"status"`
	User        BookingUser   `json:"user"`
	Movie       BookingMovie  `json:"movie"`
}

type BookingUser struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type BookingMovie struct {
	MovieID string `json:"movieId"`
	Title   string `json:"title"`
	Genre   string `json:"genre"`
}
