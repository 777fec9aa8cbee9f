package httpgin

import "time"

type CreateMovieRequest struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Genre        string `json:"genre"`
	ReleaseYear  int    `json:"releaseYear"`
	DurationMins int    `json:"durationMins"`
}

type CreateUserRequest struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	JoinedAt *time.Time `json:"joinedAt"`
}

type CreateBookingRequest struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	MovieID     string     `json:"movieId"`
	Seats       int        `json:"seats"`
	BookingDate *time.Time `json:"bookingDate"`
	Status      string     `json:"status"`
}

type HealthResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
