package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/code-sharing-box/internal/logger"
	"github.com/MKhiriev/code-sharing-box/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const tick = 5 * time.Millisecond

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not tick in time")
	}
}

func TestTickerWorker_TicksUntilStopped(t *testing.T) {
	ticks := make(chan struct{}, 16)
	w := newTickerWorker("test", tick, func(context.Context) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}, logger.Nop())

	w.Run(context.Background())
	waitFor(t, ticks)
	waitFor(t, ticks)
	w.Stop()

	// drained after Stop: no goroutine is left to send
	for len(ticks) > 0 {
		<-ticks
	}
	time.Sleep(3 * tick)
	assert.Zero(t, len(ticks))
}

func TestTickerWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := newTickerWorker("test", tick, func(context.Context) {}, logger.Nop())

	w.Run(ctx)
	cancel()
	w.Stop()
}

func TestTickerWorker_DisabledByZeroInterval(t *testing.T) {
	called := false
	w := newTickerWorker("test", 0, func(context.Context) { called = true }, logger.Nop())

	w.Run(context.Background())
	time.Sleep(3 * tick)
	w.Stop()

	assert.False(t, called)
	assert.Nil(t, w.cancel)
}

func TestTickerWorker_RunRestarts(t *testing.T) {
	w := newTickerWorker("test", tick, func(context.Context) {}, logger.Nop())

	w.Run(context.Background())
	first := w.cancel
	w.Run(context.Background())

	require.NotNil(t, first)
	assert.NotNil(t, w.cancel)
	w.Stop()
	w.Stop()
}

func TestMessagePruner(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mock.NewMockMessageService(ctrl)

	ticked := make(chan struct{}, 1)
	messages.EXPECT().
		PruneMessages(gomock.Any(), 10).
		DoAndReturn(func(context.Context, int) (int64, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return 3, nil
		}).
		MinTimes(1)

	w := NewMessagePruner(messages, 10, tick, logger.Nop())
	w.Run(context.Background())
	waitFor(t, ticked)
	w.Stop()
}

func TestMessagePruner_ErrorKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mock.NewMockMessageService(ctrl)

	ticked := make(chan struct{}, 4)
	messages.EXPECT().
		PruneMessages(gomock.Any(), 1).
		DoAndReturn(func(context.Context, int) (int64, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return 0, errors.New("store unavailable")
		}).
		MinTimes(2)

	w := NewMessagePruner(messages, 1, tick, logger.Nop())
	w.Run(context.Background())
	waitFor(t, ticked)
	waitFor(t, ticked)
	w.Stop()
}

func TestMessagePruner_DisabledWithoutKeep(t *testing.T) {
	ctrl := gomock.NewController(t)
	messages := mock.NewMockMessageService(ctrl)

	w := NewMessagePruner(messages, 0, tick, logger.Nop())
	w.Run(context.Background())
	time.Sleep(3 * tick)
	w.Stop()
}

func TestCookieSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityService(ctrl)

	ticked := make(chan struct{}, 1)
	identity.EXPECT().
		SweepExpired(gomock.Any()).
		DoAndReturn(func(context.Context) (int64, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return 1, nil
		}).
		MinTimes(1)

	w := NewCookieSweeper(identity, tick, logger.Nop())
	w.Run(context.Background())
	waitFor(t, ticked)
	w.Stop()
}

func TestCookieSweeper_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	identity := mock.NewMockIdentityService(ctrl)

	w := NewCookieSweeper(identity, 0, logger.Nop())
	w.Run(context.Background())
	w.Stop()
}
