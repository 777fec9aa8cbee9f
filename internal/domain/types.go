package domain

import "time"

type BookingStatus string

const (
	BookingBooked    BookingStatus = "Booked"
	BookingCancelled BookingStatus = "Cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	return s == BookingBooked || s == BookingCancelled
}

// Movie is a catalog entry. The ID is caller-assigned and unique.
type Movie struct {
	ID           string `bson:"_id" json:"id"`
	Title        string `bson:"title" json:"title"`
	Genre        string `bson:"genre,omitempty" json:"genre,omitempty"`
	ReleaseYear  int    `bson:"releaseYear,omitempty" json:"releaseYear,omitempty"`
	DurationMins int    `bson:"durationMins,omitempty" json:"durationMins,omitempty"`
}

type User struct {
	ID       string    `bson:"_id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Email    string    `bson:"email" json:"email"`
	JoinedAt time.Time `bson:"joinedAt" json:"joinedAt"`
}

// Booking references a User and a Movie by ID. Both must exist at creation
// time; referential integrity is not re-checked afterwards.
type Booking struct {
	ID          string        `bson:"_id" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	MovieID     string        `bson:"movieId" json:"movieId"`
	BookingDate time.Time     `bson:"bookingDate" json:"bookingDate"`
	Seats       int           `bson:"seats" json:"seats"`
	Status      BookingStatus `bson:"status" json:"status"`
}
