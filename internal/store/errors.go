package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrJobNotFound is returned when a job application identified by id and
	// owner does not exist. A row owned by someone else is reported the same
	// way.
	ErrJobNotFound = errors.New("job application was not found")

	// ErrJobNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrJobNotSaved = errors.New("job application was not saved")

	// ErrSessionNotFound is returned by the client session repository when no
	// session has been saved.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrCacheMiss is returned by [AnalyticsCache.Get] when nothing is cached
	// for the requested key.
	ErrCacheMiss = errors.New("cache miss")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when the database refuses to open a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when a transaction fails to commit.
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)
