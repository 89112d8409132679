package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
)

// analyticsRepository runs the aggregate queries of the analytics summary
// against the "job_applications" table.
type analyticsRepository struct {
	*DB
	logger *logger.Logger
}

// NewAnalyticsRepository constructs an [AnalyticsRepository] backed by db.
func NewAnalyticsRepository(db *DB, logger *logger.Logger) AnalyticsRepository {
	return &analyticsRepository{
		DB:     db,
		logger: logger,
	}
}

type snapshotTxKey struct{}

// querier is the read surface shared by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// querier returns the snapshot transaction carried by ctx, or the pool.
func (a *analyticsRepository) querier(ctx context.Context) querier {
	if tx, ok := ctx.Value(snapshotTxKey{}).(*sql.Tx); ok {
		return tx
	}
	return a.DB
}

// ReadSnapshot runs fn in a read-only repeatable-read transaction so the
// aggregates computed inside it agree with each other.
func (a *analyticsRepository) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		log.Err(err).Str("func", "analyticsRepository.ReadSnapshot").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, snapshotTxKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "analyticsRepository.ReadSnapshot").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

// CountByStatus returns the number of applications per status. Statuses with
// no applications are absent from the map.
func (a *analyticsRepository) CountByStatus(ctx context.Context, query models.AnalyticsQuery) (map[models.JobStatus]int64, error) {
	counts := make(map[models.JobStatus]int64, len(models.JobStatuses))

	err := a.collect(ctx, "analyticsRepository.CountByStatus", query, buildCountByStatusQuery, func(scan func(...any) error) error {
		var (
			status models.JobStatus
			count  int64
		)
		if err := scan(&status, &count); err != nil {
			return err
		}
		counts[status] = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// AverageResponseDays returns the mean number of days between applying and
// hearing back, over applications that have a response. Zero when none do.
func (a *analyticsRepository) AverageResponseDays(ctx context.Context, query models.AnalyticsQuery) (float64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildAverageResponseDaysQuery(query)
	if err != nil {
		log.Err(err).Str("func", "analyticsRepository.AverageResponseDays").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var avg float64
	if err = a.querier(ctx).QueryRowContext(ctx, sqlQuery, args...).Scan(&avg); err != nil {
		log.Err(err).
			Str("func", "analyticsRepository.AverageResponseDays").
			Int64("user_id", query.UserID).
			Msg("failed to compute average response time")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return avg, nil
}

// CountByDay returns applications per applied day, ascending.
func (a *analyticsRepository) CountByDay(ctx context.Context, query models.AnalyticsQuery) ([]models.TimePoint, error) {
	points := make([]models.TimePoint, 0, 32)

	err := a.collect(ctx, "analyticsRepository.CountByDay", query, buildCountByDayQuery, func(scan func(...any) error) error {
		var point models.TimePoint
		if err := scan(&point.Date, &point.Count); err != nil {
			return err
		}
		points = append(points, point)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return points, nil
}

// CountByRole returns applications per role, most frequent first and ties
// broken alphabetically.
func (a *analyticsRepository) CountByRole(ctx context.Context, query models.AnalyticsQuery) ([]models.RoleCount, error) {
	roles := make([]models.RoleCount, 0, 16)

	err := a.collect(ctx, "analyticsRepository.CountByRole", query, buildCountByRoleQuery, func(scan func(...any) error) error {
		var role models.RoleCount
		if err := scan(&role.Role, &role.Count); err != nil {
			return err
		}
		roles = append(roles, role)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return roles, nil
}

// collect builds a query, runs it and hands every row to each.
func (a *analyticsRepository) collect(
	ctx context.Context,
	funcName string,
	query models.AnalyticsQuery,
	build func(models.AnalyticsQuery) (string, []any, error),
	each func(scan func(...any) error) error,
) error {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := build(query)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.querier(ctx).QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("user_id", query.UserID).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if scanErr := each(rows.Scan); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Int64("user_id", query.UserID).Msg("failed to scan row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Int64("user_id", query.UserID).Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}
