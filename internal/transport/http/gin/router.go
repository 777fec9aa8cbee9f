package httpgin

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshlewis24/cinebook/internal/domain"
	"github.com/joshlewis24/cinebook/internal/service"
	"github.com/joshlewis24/cinebook/internal/service/analytics"
	"github.com/joshlewis24/cinebook/internal/service/catalog"
)

const analyticsCacheControl = "public, max-age=15"

func NewRouter(
	svcs *service.Services,
	limiter Limiter,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// health
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{OK: true, Msg: "cinebook is up"})
	})

	writes := r.Group("/", RateLimitMiddleware(limiter))
	{
		writes.POST("/movies", handleCreateMovie(svcs))
		writes.POST("/users", handleCreateUser(svcs))
		writes.POST("/bookings", handleCreateBooking(svcs))
	}

	an := r.Group("/analytics")
	{
		an.GET("/movie-bookings", handleMovieBookings(svcs))
		an.GET("/user-bookings", handleUserBookings(svcs))
		an.GET("/top-users", handleTopUsers(svcs))
		an.GET("/genre-wise-bookings", handleGenreBookings(svcs))
		an.GET("/active-bookings", handleActiveBookings(svcs))
	}

	return r
}

// @Summary  Create movie
// @Param    req body CreateMovieRequest true "payload"
// @Success  201 {object} domain.Movie
// @Failure  400  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse
// @Router   /movies [post]
func handleCreateMovie(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMovieRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		m, err := svcs.Catalog.CreateMovie(c.Request.Context(), domain.Movie{
			ID:           req.ID,
			Title:        req.Title,
			Genre:        req.Genre,
			ReleaseYear:  req.ReleaseYear,
			DurationMins: req.DurationMins,
		})
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, m)
	}
}

// @Summary  Create user
// @Param    req body CreateUserRequest true "payload"
// @Success  201 {object} domain.User
// @Failure  400  {object}  ErrorResponse
// @Failure  409  {object}  ErrorResponse
// @Router   /users [post]
func handleCreateUser(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		u := domain.User{
			ID:    req.ID,
			Name:  req.Name,
			Email: req.Email,
		}
		if req.JoinedAt != nil {
			u.JoinedAt = *req.JoinedAt
		}

		created, err := svcs.Catalog.CreateUser(c.Request.Context(), u)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  Create booking
// @Param    req body CreateBookingRequest true "payload"
// @Success  201 {object} domain.Booking
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse "user or movie not found"
// @Failure  409  {object}  ErrorResponse
// @Failure  429  {object}  ErrorResponse "rate limited"
// @Router   /bookings [post]
func handleCreateBooking(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		b := domain.Booking{
			ID:      req.ID,
			UserID:  req.UserID,
			MovieID: req.MovieID,
			Seats:   req.Seats,
			Status:  domain.BookingStatus(req.Status),
		}
		if req.BookingDate != nil {
			b.BookingDate = *req.BookingDate
		}

		created, err := svcs.Catalog.CreateBooking(c.Request.Context(), b)
		if err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// @Summary  Per-movie booking totals
// @Success  200 {array} domain.MovieBookingTotal
// @Router   /analytics/movie-bookings [get]
func handleMovieBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svcs.Analytics.MovieBookingTotals(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, rows, analyticsCacheControl)
	}
}

// @Summary  Per-user booking history
// @Success  200 {array} domain.UserBookingHistory
// @Router   /analytics/user-bookings [get]
func handleUserBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svcs.Analytics.UserBookingHistories(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, rows, analyticsCacheControl)
	}
}

// @Summary  Users with more bookings than the threshold
// @Success  200 {array} domain.TopUser
// @Router   /analytics/top-users [get]
func handleTopUsers(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svcs.Analytics.TopUsers(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, rows, analyticsCacheControl)
	}
}

// @Summary  Per-genre seat and booking totals
// @Success  200 {array} domain.GenreTotal
// @Router   /analytics/genre-wise-bookings [get]
func handleGenreBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svcs.Analytics.GenreTotals(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, rows, analyticsCacheControl)
	}
}

// @Summary  Active bookings with user and movie
// @Success  200 {array} domain.ActiveBooking
// @Router   /analytics/active-bookings [get]
func handleActiveBookings(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svcs.Analytics.ActiveBookings(c.Request.Context())
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, rows, analyticsCacheControl)
	}
}

// --- Helpers ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	var verr *catalog.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Msg})
	case errors.Is(err, catalog.ErrDuplicateID):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "id already exists"})
	case errors.Is(err, catalog.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, catalog.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "movie not found"})
	case errors.Is(err, analytics.ErrQuery):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: analytics.ErrQuery.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
