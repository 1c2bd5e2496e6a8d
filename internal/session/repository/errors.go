package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert session")
	ErrFailedToGet    = errors.New("failed to get session")
	ErrFailedToList   = errors.New("failed to list sessions")
	ErrFailedToUpdate = errors.New("failed to update session")
)
