// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/code-sharing-box/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	cookiesTable = "cookies"

	colName      = "name"
	colValue     = "value"
	colPath      = "path"
	colMaxAge    = "max_age"
	colExpiresAt = "expires_at"
)

// expires_at is stored as unix seconds.

func buildGetCookieQuery(b sq.StatementBuilderType, name string, now time.Time) (string, []any, error) {
	return b.Select(colName, colValue, colPath, colMaxAge, colExpiresAt).
		From(cookiesTable).
		Where(sq.Eq{colName: name}).
		Where(sq.Gt{colExpiresAt: now.Unix()}).
		ToSql()
}

func buildSetCookieQuery(b sq.StatementBuilderType, cookie models.Cookie) (string, []any, error) {
	return b.Insert(cookiesTable).
		Columns(colName, colValue, colPath, colMaxAge, colExpiresAt).
		Values(cookie.Name, cookie.Value, cookie.Path, cookie.MaxAge, cookie.ExpiresAt.Unix()).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			value = excluded.value,
			path = excluded.path,
			max_age = excluded.max_age,
			expires_at = excluded.expires_at`).
		ToSql()
}

func buildDeleteExpiredCookiesQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(cookiesTable).
		Where(sq.LtOrEq{colExpiresAt: now.Unix()}).
		ToSql()
}
