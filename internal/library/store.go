package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinelog/internal/config"
	"cinelog/internal/logging"
)

// Lookup resolves a title against an external metadata source. Resolve
// reports found/not-found through the Resolution value; transport failures
// travel as ordinary errors tagged with ErrTransport.
type Lookup interface {
	Resolve(ctx context.Context, title string) (Resolution, error)
}

// Resolution is the tagged outcome of a metadata lookup.
type Resolution struct {
	Found bool
	Movie Movie
}

// Store owns the persisted movie table. All other components operate on
// transient snapshots returned by List.
type Store struct {
	db     *sql.DB
	lookup Lookup
	logger *slog.Logger
	lock   *flock.Flock
	path   string
}

// Open initializes or connects to the collection database, acquires the
// single-instance lock, and creates the movies table if absent. lookup may
// be nil when the caller never adds movies; Add then reports a
// configuration error.
func Open(cfg *config.Config, lookup Lookup, logger *slog.Logger) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("%w: ensure directories: %w", ErrStorageUnavailable, err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "cinelog.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire instance lock: %w", ErrStorageUnavailable, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: another cinelog process is using %s", ErrStorageUnavailable, cfg.Paths.DataDir)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("%w: open sqlite db: %w", ErrStorageUnavailable, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("%w: apply pragma %q: %w", ErrStorageUnavailable, pragma, execErr)
		}
	}

	store := &Store{db: db, lookup: lookup, logger: logger, lock: lock, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the instance lock and the database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Path returns the location of the SQLite database file.
func (s *Store) Path() string {
	return s.path
}

// List returns a complete snapshot of the collection. Row order is
// irrelevant; every consumer re-sorts.
func (s *Store) List(ctx context.Context) (Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT title, year, rating, poster_url FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("%w: list movies: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	snapshot := make(Snapshot)
	for rows.Next() {
		var (
			title  string
			attrs  Attributes
			poster sql.NullString
		)
		if err := rows.Scan(&title, &attrs.Year, &attrs.Rating, &poster); err != nil {
			return nil, fmt.Errorf("%w: scan movie: %w", ErrStorageUnavailable, err)
		}
		attrs.PosterURL = poster.String
		snapshot[title] = attrs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate movies: %w", ErrStorageUnavailable, err)
	}
	return snapshot, nil
}

// Add resolves title through the enrichment lookup and inserts the
// resolved record. The lookup is not consulted when the title already
// exists. On success exactly one row is written; on any failure no state
// changes.
func (s *Store) Add(ctx context.Context, title string) (*Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}

	exists, err := s.titleExists(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicate, title)
	}

	if s.lookup == nil {
		return nil, fmt.Errorf("%w: metadata lookup is not configured (set omdb.api_key)", ErrConfiguration)
	}

	resolution, err := s.lookup.Resolve(ctx, title)
	if err != nil {
		if Kind(err) == "internal" {
			err = fmt.Errorf("%w: %w", ErrTransport, err)
		}
		return nil, err
	}
	if !resolution.Found {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}

	movie := resolution.Movie
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO movies (title, year, rating, poster_url) VALUES (?, ?, ?, ?)`,
		movie.Title,
		movie.Year,
		movie.Rating,
		movie.PosterURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, movie.Title)
		}
		return nil, fmt.Errorf("%w: insert movie: %w", ErrStorageUnavailable, err)
	}

	s.logger.Info("movie added", "title", movie.Title, "year", movie.Year, "rating", movie.Rating)
	return &movie, nil
}

// Delete removes the row with the exact title. A missing title is not an
// error; the bool reports whether a row was removed.
func (s *Store) Delete(ctx context.Context, title string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE title = ?`, title)
	if err != nil {
		return false, fmt.Errorf("%w: delete movie: %w", ErrStorageUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected: %w", ErrStorageUnavailable, err)
	}
	if affected > 0 {
		s.logger.Info("movie deleted", "title", title)
	}
	return affected > 0, nil
}

// UpdateRating sets a new rating for an existing title. The rating must
// already be validated to [0,10] by the caller. The bool reports whether a
// row existed and was updated.
func (s *Store) UpdateRating(ctx context.Context, title string, rating float64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE movies SET rating = ? WHERE title = ?`, rating, title)
	if err != nil {
		return false, fmt.Errorf("%w: update rating: %w", ErrStorageUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected: %w", ErrStorageUnavailable, err)
	}
	if affected > 0 {
		s.logger.Info("rating updated", "title", title, "rating", rating)
	}
	return affected > 0, nil
}

func (s *Store) titleExists(ctx context.Context, title string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE title = ?`, title).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: check title: %w", ErrStorageUnavailable, err)
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
