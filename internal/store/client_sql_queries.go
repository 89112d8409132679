// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/jobwise/models"
)

const (
	sessionsTable = "sessions"
	// sessionRowID pins the table to a single row.
	sessionRowID = 1
)

var sessionColumns = []string{"token", "user_id", "name", "email", "created_at"}

// sqliteQB uses "?" placeholders, the squirrel default.
var sqliteQB = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveSessionQuery(session models.Session) (string, []any, error) {
	return sqliteQB.Replace(sessionsTable).
		Columns(append([]string{"id"}, sessionColumns...)...).
		Values(
			sessionRowID,
			session.Token,
			session.User.ID,
			session.User.Name,
			session.User.Email,
			session.CreatedAt,
		).
		ToSql()
}

func buildGetSessionQuery() (string, []any, error) {
	return sqliteQB.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqliteQB.Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
