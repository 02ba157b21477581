package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/models"
)

type identityService struct {
	cookies   store.CookieRepository
	generator DeviceIDGenerator
	now       func() time.Time

	// serializes first-time generation so concurrent callers agree on one
	// identity
	mu sync.Mutex

	logger *logger.Logger
}

// NewIdentityService returns an IdentityService backed by the cookie jar
// cookies. New identities come from generator.
func NewIdentityService(cookies store.CookieRepository, generator DeviceIDGenerator, logger *logger.Logger) IdentityService {
	return &identityService{
		cookies:   cookies,
		generator: generator,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *identityService) Resolve(ctx context.Context) (models.DeviceIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cookie, err := s.cookies.GetCookie(ctx, models.DeviceIDCookieName)
	switch {
	case err == nil && cookie.Value != "":
		return models.DeviceIdentity(cookie.Value), nil
	case err != nil && !errors.Is(err, store.ErrCookieNotFound):
		s.logger.Err(err).Str("func", "*identityService.Resolve").Msg("error reading device id cookie")
		return "", fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
	}

	id, err := s.generator.Generate()
	if err != nil {
		s.logger.Err(err).Str("func", "*identityService.Resolve").Msg("error generating device id")
		return "", fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
	}

	cookie = models.NewCookie(models.DeviceIDCookieName, id.String(), models.DeviceIDCookieMaxAge, s.now())
	if err = s.cookies.SetCookie(ctx, cookie); err != nil {
		s.logger.Err(err).Str("func", "*identityService.Resolve").Msg("error persisting device id cookie")
		return "", fmt.Errorf("%w: %w", ErrIdentityUnavailable, err)
	}

	s.logger.Info().Str("func", "*identityService.Resolve").Str("device_id", id.String()).Msg("new device id issued")
	return id, nil
}

func (s *identityService) SweepExpired(ctx context.Context) (int64, error) {
	deleted, err := s.cookies.DeleteExpiredCookies(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("error sweeping expired cookies: %w", err)
	}
	return deleted, nil
}
