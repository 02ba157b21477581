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

// messageRepository is the database/sql implementation of
// [MessageRepository]. It works against both PostgreSQL and SQLite; the
// dialect differences live in the [DB] statement builder.
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by db.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMessage inserts a new row and returns it with the generated id.
func (r *messageRepository) SaveMessage(ctx context.Context, deviceID models.DeviceIdentity, text string, updatedAt time.Time) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveMessageQuery(r.db.builder, deviceID, text, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.SaveMessage").Msg("error building insert query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	msg := models.Message{DeviceID: deviceID, Text: text, UpdatedAt: updatedAt}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&msg.ID); err != nil {
		log.Err(err).Str("func", "*messageRepository.SaveMessage").
			Str("device_id", deviceID.String()).
			Msg("error inserting message")
		return models.Message{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return msg, nil
}

// GetRecentMessage returns the newest row or [ErrMessageNotFound].
func (r *messageRepository) GetRecentMessage(ctx context.Context) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentMessageQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.GetRecentMessage").Msg("error building select query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var msg models.Message
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &msg.DeviceID, &msg.Text, &msg.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Message{}, ErrMessageNotFound
	case err != nil:
		log.Err(err).Str("func", "*messageRepository.GetRecentMessage").Msg("error selecting recent message")
		return models.Message{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	msg.UpdatedAt = msg.UpdatedAt.UTC()
	return msg, nil
}

// PruneMessages keeps the keep newest rows. A non-positive keep is a no-op.
func (r *messageRepository) PruneMessages(ctx context.Context, keep int) (int64, error) {
	log := logger.FromContext(ctx)

	if keep <= 0 {
		return 0, nil
	}

	query, args, err := buildPruneMessagesQuery(r.db.builder, keep)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.PruneMessages").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.PruneMessages").Int("keep", keep).Msg("error pruning messages")
		return 0, r.db.wrapError(ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}
