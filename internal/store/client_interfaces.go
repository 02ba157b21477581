package store

import (
	"context"
	"time"

	"github.com/MKhiriev/code-sharing-box/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CookieRepository is the client's local cookie jar.
type CookieRepository interface {
	// GetCookie returns the cookie called name. Expired cookies are treated
	// as absent and reported as [ErrCookieNotFound].
	GetCookie(ctx context.Context, name string) (models.Cookie, error)

	// SetCookie stores cookie, replacing any cookie with the same name.
	SetCookie(ctx context.Context, cookie models.Cookie) error

	// DeleteExpiredCookies removes every cookie that has expired at now and
	// returns how many were removed.
	DeleteExpiredCookies(ctx context.Context, now time.Time) (int64, error)
}
