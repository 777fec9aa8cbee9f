package mongorepo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joshlewis24/cinebook/internal/repository"
)

// wrapDBErr maps common driver errors to repository-level errors and wraps
// them with the provided operation name.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s:%w", op, repository.ErrConflict)
	}

	return fmt.Errorf("%s:%w", op, err)
}
