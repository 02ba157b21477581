// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/code-sharing-box/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSaveMessageQuery(t *testing.T) {
	now := time.Date(2024, 3, 5, 8, 7, 9, 0, time.UTC)

	query, args, err := buildSaveMessageQuery(dollarBuilder, "abc123xyz0", "hello", now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into messages")
	require.Contains(t, q, "device_id")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "returning id")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$3")

	require.Equal(t, []any{"abc123xyz0", "hello", now}, args)
}

func Test_buildSaveMessageQuery_SQLitePlaceholders(t *testing.T) {
	query, args, err := buildSaveMessageQuery(questionBuilder, "d", "", time.Unix(0, 0))
	require.NoError(t, err)

	require.NotContains(t, query, "$1")
	require.Equal(t, 3, strings.Count(query, "?"))
	require.Len(t, args, 3)
	require.Equal(t, "", args[1])
}

func Test_buildRecentMessageQuery(t *testing.T) {
	query, args, err := buildRecentMessageQuery(dollarBuilder)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from messages")
	require.Contains(t, q, "order by updated_at desc, id desc")
	require.Contains(t, q, "limit 1")
}

func Test_buildPruneMessagesQuery(t *testing.T) {
	query, args, err := buildPruneMessagesQuery(dollarBuilder, 25)
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from messages")
	require.Contains(t, q, "id not in (select id from messages")
	require.Contains(t, q, "limit 25")
}

func Test_buildCookieQueries(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	t.Run("get filters expired", func(t *testing.T) {
		query, args, err := buildGetCookieQuery(questionBuilder, models.DeviceIDCookieName, now)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "from cookies")
		require.Contains(t, q, "expires_at > ?")
		require.Equal(t, []any{models.DeviceIDCookieName, now.Unix()}, args)
	})

	t.Run("set upserts", func(t *testing.T) {
		cookie := models.NewCookie(models.DeviceIDCookieName, "abc", models.DeviceIDCookieMaxAge, now)

		query, args, err := buildSetCookieQuery(questionBuilder, cookie)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "insert into cookies")
		require.Contains(t, q, "on conflict (name) do update")
		require.Len(t, args, 5)
		require.Equal(t, now.Unix()+models.DeviceIDCookieMaxAge, args[4])
	})

	t.Run("delete expired", func(t *testing.T) {
		query, args, err := buildDeleteExpiredCookiesQuery(questionBuilder, now)
		require.NoError(t, err)

		require.Contains(t, strings.ToLower(query), "delete from cookies where expires_at <= ?")
		require.Equal(t, []any{now.Unix()}, args)
	})
}
