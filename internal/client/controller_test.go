// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/service"
	"github.com/MKhiriev/code-sharing-box/internal/store"
	"github.com/MKhiriev/code-sharing-box/internal/utils"
	"github.com/MKhiriev/code-sharing-box/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ── fakes ────────────────────────────────────────────────────────────────────

type savedMessage struct {
	DeviceID models.DeviceIdentity
	Text     string
}

type fakeStore struct {
	mu sync.Mutex

	recent    models.RecentMessageResponse
	recentErr error
	saveErr   error

	// when non-nil Save blocks until release is closed
	release chan struct{}
	started chan struct{}
	onSave  func(deviceID models.DeviceIdentity, text string)

	recentCalls int
	saved       []savedMessage
}

func (f *fakeStore) Save(_ context.Context, deviceID models.DeviceIdentity, text string) error {
	if f.onSave != nil {
		f.onSave(deviceID, text)
	}
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, savedMessage{DeviceID: deviceID, Text: text})
	return f.saveErr
}

func (f *fakeStore) Recent(context.Context) (models.RecentMessageResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recentCalls++
	return f.recent, f.recentErr
}

func (f *fakeStore) calls() (int, []savedMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recentCalls, append([]savedMessage(nil), f.saved...)
}

type fakeIdentity struct {
	id    models.DeviceIdentity
	err   error
	calls int
}

func (f *fakeIdentity) Resolve(context.Context) (models.DeviceIdentity, error) {
	f.calls++
	return f.id, f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeCookieJar struct {
	mu      sync.Mutex
	cookies map[string]models.Cookie
	sets    int
}

func (j *fakeCookieJar) GetCookie(_ context.Context, name string) (models.Cookie, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	c, ok := j.cookies[name]
	if !ok {
		return models.Cookie{}, store.ErrCookieNotFound
	}
	return c, nil
}

func (j *fakeCookieJar) SetCookie(_ context.Context, c models.Cookie) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.sets++
	j.cookies[c.Name] = c
	return nil
}

func (j *fakeCookieJar) DeleteExpiredCookies(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (j *fakeCookieJar) get(name string) (models.Cookie, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	c, ok := j.cookies[name]
	return c, ok
}

func newTestController(identity IdentityProvider, st MessageStore, clip Clipboard) *Controller {
	c := NewController(identity, st, clip, logger.Nop())
	c.loc = time.UTC
	return c
}

var (
	savedNotice      = models.Notice{Kind: models.NoticeSuccess, Text: "Message saved!"}
	saveFailedNotice = models.Notice{Kind: models.NoticeFailure, Text: "Failed to save message. Please try again."}
	copiedNotice     = models.Notice{Kind: models.NoticeSuccess, Text: "Message copied to clipboard!"}
	copyFailedNotice = models.Notice{Kind: models.NoticeFailure, Text: "Failed to copy message to clipboard."}
)

// ── Mount ────────────────────────────────────────────────────────────────────

func TestController_Mount_Success(t *testing.T) {
	st := &fakeStore{recent: models.RecentMessageResponse{Success: true, Message: "hello", UpdatedAt: "2023-01-01T00:00:00Z"}}
	c := newTestController(&fakeIdentity{}, st, &fakeClipboard{})
	assert.Equal(t, models.StateUninitialized, c.State())

	c.Mount(context.Background())

	assert.Equal(t, "hello", c.Buffer())
	assert.Equal(t, "01-01-2023-00-00-00", c.LastUpdated())
	assert.Equal(t, models.StateIdleHasData, c.State())
}

func TestController_Mount_LabelUsesLocation(t *testing.T) {
	st := &fakeStore{recent: models.RecentMessageResponse{Success: true, Message: "hello", UpdatedAt: "2023-01-01T00:00:00Z"}}
	c := newTestController(&fakeIdentity{}, st, &fakeClipboard{})
	c.loc = time.FixedZone("UTC+3", 3*3600)

	c.Mount(context.Background())

	assert.Equal(t, "01-01-2023-03-00-00", c.LastUpdated())
}

func TestController_Mount_Failures(t *testing.T) {
	tests := []struct {
		name  string
		store *fakeStore
	}{
		{
			name:  "success false",
			store: &fakeStore{recent: models.RecentMessageResponse{Success: false, Message: "no message found"}},
		},
		{
			name:  "transport rejects",
			store: &fakeStore{recentErr: errors.New("connection refused")},
		},
		{
			name:  "not found",
			store: &fakeStore{recentErr: service.ErrNoRecentMessage},
		},
		{
			name:  "unparseable timestamp",
			store: &fakeStore{recent: models.RecentMessageResponse{Success: true, Message: "hello", UpdatedAt: "soon"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(&fakeIdentity{}, tt.store, &fakeClipboard{})

			c.Mount(context.Background())

			assert.Equal(t, "", c.Buffer())
			assert.Equal(t, "", c.LastUpdated())
			assert.Equal(t, models.StateIdleEmpty, c.State())
		})
	}
}

func TestController_Mount_RunsOnce(t *testing.T) {
	st := &fakeStore{recent: models.RecentMessageResponse{Success: true, Message: "hello", UpdatedAt: "2023-01-01T00:00:00Z"}}
	c := newTestController(&fakeIdentity{}, st, &fakeClipboard{})

	c.Mount(context.Background())
	c.Edit("edited")
	c.Mount(context.Background())

	recentCalls, _ := st.calls()
	assert.Equal(t, 1, recentCalls)
	assert.Equal(t, "edited", c.Buffer())
}

// ── Edit / Clear ─────────────────────────────────────────────────────────────

func TestController_Edit(t *testing.T) {
	c := newTestController(&fakeIdentity{}, &fakeStore{}, &fakeClipboard{})

	c.Edit("a")
	c.Edit("  multi\nline\t")

	assert.Equal(t, "  multi\nline\t", c.Buffer())
}

func TestController_Clear(t *testing.T) {
	st := &fakeStore{}
	identity := &fakeIdentity{id: "abc123xyz0"}
	c := newTestController(identity, st, &fakeClipboard{})

	for _, prior := range []string{"something", "", "x\ny"} {
		c.Edit(prior)
		c.Clear()
		assert.Equal(t, "", c.Buffer())
	}

	recentCalls, saved := st.calls()
	assert.Zero(t, recentCalls)
	assert.Empty(t, saved)
	assert.Zero(t, identity.calls)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestController_Save_Success(t *testing.T) {
	st := &fakeStore{}
	c := newTestController(&fakeIdentity{id: "abc123xyz0"}, st, &fakeClipboard{})
	c.Edit("hello")

	notice := c.Save(context.Background())

	if diff := cmp.Diff(savedNotice, notice); diff != "" {
		t.Errorf("notice mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "hello", c.Buffer())

	_, saved := st.calls()
	assert.Equal(t, []savedMessage{{DeviceID: "abc123xyz0", Text: "hello"}}, saved)
}

func TestController_Save_EmptyBufferIsSent(t *testing.T) {
	st := &fakeStore{}
	c := newTestController(&fakeIdentity{id: "abc123xyz0"}, st, &fakeClipboard{})

	notice := c.Save(context.Background())

	assert.Equal(t, savedNotice, notice)
	_, saved := st.calls()
	require.Len(t, saved, 1)
	assert.Equal(t, "", saved[0].Text)
}

func TestController_Save_NetworkFailure(t *testing.T) {
	st := &fakeStore{saveErr: errors.New("connection reset")}
	c := newTestController(&fakeIdentity{id: "abc123xyz0"}, st, &fakeClipboard{})
	c.Edit("keep me")

	notice := c.Save(context.Background())

	if diff := cmp.Diff(saveFailedNotice, notice); diff != "" {
		t.Errorf("notice mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "keep me", c.Buffer())

	// no retry
	_, saved := st.calls()
	assert.Len(t, saved, 1)
}

func TestController_Save_IdentityFailure(t *testing.T) {
	st := &fakeStore{}
	c := newTestController(&fakeIdentity{err: errors.New("cookie jar locked")}, st, &fakeClipboard{})
	c.Edit("text")

	notice := c.Save(context.Background())

	assert.Equal(t, saveFailedNotice, notice)
	assert.Equal(t, "text", c.Buffer())
	_, saved := st.calls()
	assert.Empty(t, saved)
}

func TestController_Save_GeneratesAndPersistsIdentityBeforeWrite(t *testing.T) {
	jar := &fakeCookieJar{cookies: map[string]models.Cookie{}}
	identity := service.NewIdentityService(jar, utils.NewDeviceIDGenerator(), logger.Nop())

	var persistedBeforeWrite bool
	st := &fakeStore{onSave: func(deviceID models.DeviceIdentity, _ string) {
		cookie, ok := jar.get(models.DeviceIDCookieName)
		persistedBeforeWrite = ok && cookie.Value == deviceID.String()
	}}
	c := newTestController(identity, st, &fakeClipboard{})
	c.Edit("hello")

	notice := c.Save(context.Background())

	require.Equal(t, savedNotice, notice)
	assert.True(t, persistedBeforeWrite, "cookie must be stored before the write request")

	_, saved := st.calls()
	require.Len(t, saved, 1)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{10}$`), saved[0].DeviceID.String())

	cookie, ok := jar.get(models.DeviceIDCookieName)
	require.True(t, ok)
	assert.Equal(t, 31536000, cookie.MaxAge)
}

func TestController_Save_ReusesExistingIdentity(t *testing.T) {
	existing := models.NewCookie(models.DeviceIDCookieName, "abc123xyz0", models.DeviceIDCookieMaxAge, time.Now())
	jar := &fakeCookieJar{cookies: map[string]models.Cookie{models.DeviceIDCookieName: existing}}
	identity := service.NewIdentityService(jar, utils.NewDeviceIDGenerator(), logger.Nop())
	st := &fakeStore{}
	c := newTestController(identity, st, &fakeClipboard{})

	c.Save(context.Background())
	c.Save(context.Background())

	_, saved := st.calls()
	require.Len(t, saved, 2)
	for _, s := range saved {
		assert.Equal(t, models.DeviceIdentity("abc123xyz0"), s.DeviceID)
	}
	assert.Zero(t, jar.sets, "existing cookie must not be rewritten")

	cookie, _ := jar.get(models.DeviceIDCookieName)
	if diff := cmp.Diff(existing, cookie); diff != "" {
		t.Errorf("cookie changed (-want +got):\n%s", diff)
	}
}

func TestController_Save_CapturesBufferAtCallTime(t *testing.T) {
	st := &fakeStore{release: make(chan struct{}), started: make(chan struct{})}
	c := newTestController(&fakeIdentity{id: "abc123xyz0"}, st, &fakeClipboard{})
	c.Edit("first")

	done := make(chan models.Notice)
	go func() { done <- c.Save(context.Background()) }()

	<-st.started
	assert.Equal(t, models.StateSaving, c.State())

	c.Edit("second")
	close(st.release)

	assert.Equal(t, savedNotice, <-done)
	assert.Equal(t, "second", c.Buffer())
	assert.Equal(t, models.StateIdleHasData, c.State())

	_, saved := st.calls()
	require.Len(t, saved, 1)
	assert.Equal(t, "first", saved[0].Text)
}

func TestController_Save_ConcurrentSavesRaceIndependently(t *testing.T) {
	st := &fakeStore{release: make(chan struct{}), started: make(chan struct{})}
	c := newTestController(&fakeIdentity{id: "abc123xyz0"}, st, &fakeClipboard{})

	results := make(chan models.Notice, 2)
	c.Edit("one")
	go func() { results <- c.Save(context.Background()) }()
	<-st.started

	c.Edit("two")
	go func() { results <- c.Save(context.Background()) }()
	<-st.started

	// both in flight at once, neither waits for the other
	assert.Equal(t, models.StateSaving, c.State())
	close(st.release)

	assert.Equal(t, savedNotice, <-results)
	assert.Equal(t, savedNotice, <-results)
	assert.Equal(t, uint64(2), c.saveSeq.Load())
	assert.True(t, c.State().Idle())

	_, saved := st.calls()
	texts := []string{saved[0].Text, saved[1].Text}
	assert.ElementsMatch(t, []string{"one", "two"}, texts)
}

func TestController_Save_BeforeMountEndsIdle(t *testing.T) {
	st := &fakeStore{recent: models.RecentMessageResponse{Success: true, Message: "from server", UpdatedAt: "2024-03-05T08:07:09Z"}}
	c := newTestController(&fakeIdentity{id: "abc123xyz0"}, st, &fakeClipboard{})
	c.Edit("draft")

	assert.Equal(t, savedNotice, c.Save(context.Background()))
	assert.Equal(t, models.StateIdleHasData, c.State())

	c.Clear()
	assert.Equal(t, models.StateIdleEmpty, c.State())

	// mount still runs after an early save
	c.Mount(context.Background())
	assert.Equal(t, "from server", c.Buffer())
	assert.Equal(t, models.StateIdleHasData, c.State())
}

// ── Copy ─────────────────────────────────────────────────────────────────────

func TestController_Copy(t *testing.T) {
	clip := &fakeClipboard{}
	c := newTestController(&fakeIdentity{}, &fakeStore{}, clip)
	c.Edit("  verbatim\n")

	notice := c.Copy()

	assert.Equal(t, copiedNotice, notice)
	assert.Equal(t, "  verbatim\n", clip.text)
}

func TestController_Copy_Failure(t *testing.T) {
	c := newTestController(&fakeIdentity{}, &fakeStore{}, &fakeClipboard{err: errors.New("no clipboard utility")})
	c.Edit("text")

	notice := c.Copy()

	assert.Equal(t, copyFailedNotice, notice)
	assert.Equal(t, "text", c.Buffer())
}
