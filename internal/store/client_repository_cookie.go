package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/models"
)

type localCookieRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewLocalCookieRepository(db *DB, logger *logger.Logger) CookieRepository {
	return &localCookieRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localCookieRepository) GetCookie(ctx context.Context, name string) (models.Cookie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCookieQuery(l.builder, name, l.now())
	if err != nil {
		log.Err(err).Str("func", "localCookieRepository.GetCookie").Msg("failed to build cookie query")
		return models.Cookie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		cookie    models.Cookie
		expiresAt int64
	)
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(&cookie.Name, &cookie.Value, &cookie.Path, &cookie.MaxAge, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Cookie{}, ErrCookieNotFound
	case err != nil:
		log.Err(err).
			Str("func", "localCookieRepository.GetCookie").
			Str("name", name).
			Msg("failed to read cookie")
		return models.Cookie{}, l.wrapError(ErrExecutingQuery, err)
	}

	cookie.ExpiresAt = time.Unix(expiresAt, 0)
	return cookie, nil
}

func (l *localCookieRepository) SetCookie(ctx context.Context, cookie models.Cookie) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetCookieQuery(l.builder, cookie)
	if err != nil {
		log.Err(err).Str("func", "localCookieRepository.SetCookie").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localCookieRepository.SetCookie").
			Str("name", cookie.Name).
			Msg("failed to execute upsert for cookie")
		return l.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (l *localCookieRepository) DeleteExpiredCookies(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredCookiesQuery(l.builder, now)
	if err != nil {
		log.Err(err).Str("func", "localCookieRepository.DeleteExpiredCookies").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localCookieRepository.DeleteExpiredCookies").Msg("failed to delete expired cookies")
		return 0, l.wrapError(ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
