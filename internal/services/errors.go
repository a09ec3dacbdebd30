package services

import "errors"

var (
	// A required semantic field cannot be resolved from the source data.
	// Fatal for the run; no partial result is produced.
	ErrMissingSchemaField = errors.New("required field is not present in the source data")

	// Zero records remain after sanitization and frequency filtering.
	// Returned instead of an empty route list silently treated as success.
	ErrEmptyAfterFiltering = errors.New("no records remain after sanitization and filtering")
)
