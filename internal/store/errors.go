package store

import "errors"

// Sentinel errors returned by storages and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBinaryDataNotFound is returned when an attachment has neither
	// inline content nor stored content under its ID.
	ErrBinaryDataNotFound = errors.New("binary data not found")

	// ErrInvalidBinaryDataID is returned when an ID would resolve outside the
	// storage root (absolute paths, "..").
	ErrInvalidBinaryDataID = errors.New("invalid binary data id")

	// ErrDuplicateExecution is returned when an item of a run is recorded
	// twice.
	ErrDuplicateExecution = errors.New("execution already recorded")

	// ErrJournalDisabled is returned by the read methods of the no-op
	// journal.
	ErrJournalDisabled = errors.New("execution journal is disabled")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan execution rows")
)
