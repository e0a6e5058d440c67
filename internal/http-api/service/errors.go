package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no such session")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWineNotFound       = errors.New("wine not found")
	ErrProducerNotFound   = errors.New("producer not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageErr wraps an unexpected repository failure. Domain errors get
// their own sentinels; everything else means the storage backend let us
// down and surfaces once, without retries.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
