package store

import (
	"time"

	"github.com/MKhiriev/code-sharing-box/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	messagesTable = "messages"

	colID        = "id"
	colDeviceID  = "device_id"
	colMessage   = "message"
	colUpdatedAt = "updated_at"
)

// newestFirst orders messages from the most recent one; id breaks ties
// between rows stored within the same clock tick.
var newestFirst = []string{colUpdatedAt + " DESC", colID + " DESC"}

func buildSaveMessageQuery(b sq.StatementBuilderType, deviceID models.DeviceIdentity, text string, updatedAt time.Time) (string, []any, error) {
	return b.Insert(messagesTable).
		Columns(colDeviceID, colMessage, colUpdatedAt).
		Values(deviceID.String(), text, updatedAt).
		Suffix("RETURNING " + colID).
		ToSql()
}

func buildRecentMessageQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(colID, colDeviceID, colMessage, colUpdatedAt).
		From(messagesTable).
		OrderBy(newestFirst...).
		Limit(1).
		ToSql()
}

// buildPruneMessagesQuery deletes everything but the keep newest rows.
func buildPruneMessagesQuery(b sq.StatementBuilderType, keep int) (string, []any, error) {
	newest, _, err := sq.Select(colID).
		From(messagesTable).
		OrderBy(newestFirst...).
		Limit(uint64(keep)).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return b.Delete(messagesTable).
		Where(colID + " NOT IN (" + newest + ")").
		ToSql()
}
