package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/utils"
	"github.com/MKhiriev/code-sharing-box/models"
)

// Notice texts shown to the user.
const (
	NoticeSaved      = "Message saved!"
	NoticeSaveFailed = "Failed to save message. Please try again."
	NoticeCopied     = "Message copied to clipboard!"
	NoticeCopyFailed = "Failed to copy message to clipboard."
)

// Controller is the client sync controller. It owns the editor buffer and
// the last-updated label, loads the recent message once on mount and pushes
// the buffer to the Message Store Service on explicit save.
//
// All methods are safe for concurrent use. Saves are not serialized: each
// save captures the buffer when it starts and races independently.
type Controller struct {
	identity  IdentityProvider
	store     MessageStore
	clipboard Clipboard
	traceIDs  *utils.UUIDGenerator
	loc       *time.Location

	mu          sync.Mutex
	mounted     bool
	state       models.SyncState
	buffer      string
	lastUpdated string
	inFlight    int

	// numbers saves in call order for log correlation only
	saveSeq atomic.Uint64

	logger *logger.Logger
}

// NewController wires a Controller. Timestamps are rendered in time.Local.
func NewController(identity IdentityProvider, store MessageStore, clipboard Clipboard, logger *logger.Logger) *Controller {
	return &Controller{
		identity:  identity,
		store:     store,
		clipboard: clipboard,
		traceIDs:  utils.NewUUIDGenerator(),
		loc:       time.Local,
		state:     models.StateUninitialized,
		logger:    logger,
	}
}

// Mount loads the most recent message. It runs once; later calls return
// immediately. On success the buffer is replaced by the fetched text and the
// label set to the formatted timestamp. Failures are logged only: the buffer
// and label stay as they were.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.state = models.StateLoading
	c.mu.Unlock()

	ctx = utils.WithTraceID(ctx, c.traceIDs.Generate())
	text, label, err := c.fetchRecent(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = models.StateIdleEmpty
	if err != nil {
		c.logger.Err(err).Str("func", "*Controller.Mount").Msg("error loading recent message")
		return
	}

	c.buffer = text
	c.lastUpdated = label
	c.logger.Debug().Str("func", "*Controller.Mount").Str("updated_at", label).Msg("recent message loaded")
}

func (c *Controller) fetchRecent(ctx context.Context) (string, string, error) {
	recent, err := c.store.Recent(ctx)
	if err != nil {
		return "", "", err
	}
	if !recent.Success {
		return "", "", fmt.Errorf("%w: %s", ErrUnsuccessfulResponse, recent.Message)
	}

	label, err := FormatTimestamp(recent.UpdatedAt, c.loc)
	if err != nil {
		return "", "", err
	}

	return recent.Message, label, nil
}

// Edit replaces the buffer with text.
func (c *Controller) Edit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer = text
}

// Save sends the buffer, as it is at call time, to the Message Store
// Service. The device identity is resolved (and persisted when new) before
// the request is sent. The buffer is never modified.
func (c *Controller) Save(ctx context.Context) models.Notice {
	c.mu.Lock()
	text := c.buffer
	c.inFlight++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight--
		// a save finished before any mount leaves the controller idle
		if c.state == models.StateUninitialized {
			c.state = models.StateIdleEmpty
		}
		c.mu.Unlock()
	}()

	return c.save(ctx, text)
}

func (c *Controller) save(ctx context.Context, text string) models.Notice {
	seq := c.saveSeq.Add(1)
	traceID := c.traceIDs.Generate()
	ctx = utils.WithTraceID(ctx, traceID)
	log := c.logger.With().Uint64("save_seq", seq).Str("trace_id", traceID).Logger()

	deviceID, err := c.identity.Resolve(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Controller.Save").Msg("error resolving device identity")
		return failure(NoticeSaveFailed)
	}

	if err = c.store.Save(ctx, deviceID, text); err != nil {
		log.Err(err).Str("func", "*Controller.Save").Msg("error saving message")
		return failure(NoticeSaveFailed)
	}

	log.Info().Str("func", "*Controller.Save").Int("length", len(text)).Msg("message saved")
	return success(NoticeSaved)
}

// Copy writes the buffer verbatim to the system clipboard.
func (c *Controller) Copy() models.Notice {
	if err := c.clipboard.Copy(c.Buffer()); err != nil {
		c.logger.Err(err).Str("func", "*Controller.Copy").Msg("error copying to clipboard")
		return failure(NoticeCopyFailed)
	}
	return success(NoticeCopied)
}

// Clear empties the buffer. Nothing is sent and nothing is re-fetched.
func (c *Controller) Clear() {
	c.Edit("")
}

// Buffer returns the current editor text.
func (c *Controller) Buffer() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer
}

// LastUpdated returns the formatted timestamp of the message loaded on
// mount, or "" when nothing was loaded.
func (c *Controller) LastUpdated() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUpdated
}

// State reports the lifecycle state. The controller is saving while at
// least one save is in flight; idle states follow the buffer.
func (c *Controller) State() models.SyncState {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.inFlight > 0:
		return models.StateSaving
	case !c.state.Idle():
		return c.state
	case c.buffer != "":
		return models.StateIdleHasData
	default:
		return models.StateIdleEmpty
	}
}

func success(text string) models.Notice {
	return models.Notice{Kind: models.NoticeSuccess, Text: text}
}

func failure(text string) models.Notice {
	return models.Notice{Kind: models.NoticeFailure, Text: text}
}
