package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/jobwise/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, security_question, security_answer_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, security_question, security_answer_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, security_question, security_answer_hash, created_at
    FROM users
    WHERE user_id = $1;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`
)

const jobsTable = "job_applications"

// psql is the squirrel builder for Postgres ($n placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var jobColumns = []string{
	"id",
	"user_id",
	"company",
	"role",
	"status",
	"location",
	"notes",
	"applied_at",
	"responded_at",
	"created_at",
	"updated_at",
}

func buildInsertJobQuery(job models.JobApplication) (string, []any, error) {
	return psql.Insert(jobsTable).
		Columns(jobColumns...).
		Values(
			job.ID,
			job.UserID,
			job.Company,
			job.Role,
			job.Status,
			job.Location,
			job.Notes,
			job.AppliedAt,
			job.RespondedAt,
			job.CreatedAt,
			job.UpdatedAt,
		).
		ToSql()
}

func buildListJobsQuery(userID int64, filter models.JobFilter) (string, []any, error) {
	query := psql.Select(jobColumns...).
		From(jobsTable).
		Where(sq.Eq{"user_id": userID})

	if filter.Status != nil {
		query = query.Where(sq.Eq{"status": *filter.Status})
	}

	return query.OrderBy("applied_at DESC", "created_at DESC").ToSql()
}

func buildGetJobQuery(userID int64, jobID string) (string, []any, error) {
	return psql.Select(jobColumns...).
		From(jobsTable).
		Where(sq.Eq{"id": jobID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateJobQuery(job models.JobApplication) (string, []any, error) {
	return psql.Update(jobsTable).
		Set("company", job.Company).
		Set("role", job.Role).
		Set("status", job.Status).
		Set("location", job.Location).
		Set("notes", job.Notes).
		Set("applied_at", job.AppliedAt).
		Set("responded_at", job.RespondedAt).
		Set("updated_at", job.UpdatedAt).
		Where(sq.Eq{"id": job.ID}).
		Where(sq.Eq{"user_id": job.UserID}).
		ToSql()
}

func buildDeleteJobQuery(userID int64, jobID string) (string, []any, error) {
	return psql.Delete(jobsTable).
		Where(sq.Eq{"id": jobID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// analyticsScope restricts a query to the user's applications, and to those
// applied on or after query.Since when a period is set.
func analyticsScope(b sq.SelectBuilder, query models.AnalyticsQuery) sq.SelectBuilder {
	b = b.From(jobsTable).Where(sq.Eq{"user_id": query.UserID})
	if query.Since != nil {
		b = b.Where(sq.GtOrEq{"applied_at": *query.Since})
	}
	return b
}

func buildCountByStatusQuery(query models.AnalyticsQuery) (string, []any, error) {
	return analyticsScope(psql.Select("status", "COUNT(*)"), query).
		GroupBy("status").
		ToSql()
}

func buildAverageResponseDaysQuery(query models.AnalyticsQuery) (string, []any, error) {
	return analyticsScope(psql.Select(
		"COALESCE(AVG(EXTRACT(EPOCH FROM (responded_at - applied_at)) / 86400), 0)",
	), query).
		Where(sq.NotEq{"responded_at": nil}).
		ToSql()
}

func buildCountByDayQuery(query models.AnalyticsQuery) (string, []any, error) {
	return analyticsScope(psql.Select(
		"to_char(date_trunc('day', applied_at), 'YYYY-MM-DD') AS day",
		"COUNT(*)",
	), query).
		GroupBy("day").
		OrderBy("day ASC").
		ToSql()
}

func buildCountByRoleQuery(query models.AnalyticsQuery) (string, []any, error) {
	return analyticsScope(psql.Select("role", "COUNT(*) AS total"), query).
		GroupBy("role").
		OrderBy("total DESC", "role ASC").
		ToSql()
}
