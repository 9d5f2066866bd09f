package hotload

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/specialistvlad/botflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel(marker string) *config.Model {
	return &config.Model{
		Modules: map[string]*config.ModuleConfig{
			marker: {Flows: []string{"all"}},
		},
		Working: &config.WorkingObject{},
	}
}

func TestNewRejectsInvalidInitialSnapshot(t *testing.T) {
	_, err := New(nil, nil, 0)
	require.Error(t, err)

	_, err = New(&config.Model{}, nil, 0)
	require.Error(t, err)
}

func TestApplySwapsSnapshot(t *testing.T) {
	l, err := New(validModel("a"), nil, 0)
	require.NoError(t, err)

	next := validModel("b")
	require.NoError(t, l.Apply(next))
	assert.Same(t, next, l.Current())
}

func TestApplyRejectsInvalidSnapshot(t *testing.T) {
	initial := validModel("a")
	l, err := New(initial, nil, 0)
	require.NoError(t, err)

	require.Error(t, l.Apply(&config.Model{}))
	assert.Same(t, initial, l.Current(), "previous snapshot must survive a rejected apply")
}

func TestReloadDebouncesBursts(t *testing.T) {
	var loads atomic.Int32
	next := validModel("b")
	l, err := New(validModel("a"), func(ctx context.Context) (*config.Model, error) {
		loads.Add(1)
		return next, nil
	}, 30*time.Millisecond)
	require.NoError(t, err)
	defer l.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		l.Reload(ctx)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return l.Current() == next },
		time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), loads.Load(), "a burst of signals must collapse into one load")
}

func TestReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	initial := validModel("a")
	var loads atomic.Int32
	l, err := New(initial, func(ctx context.Context) (*config.Model, error) {
		loads.Add(1)
		return nil, errors.New("parse error")
	}, 10*time.Millisecond)
	require.NoError(t, err)
	defer l.Close()

	l.Reload(context.Background())
	assert.Eventually(t, func() bool { return loads.Load() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Same(t, initial, l.Current())
}

func TestCloseCancelsPendingReload(t *testing.T) {
	var loads atomic.Int32
	l, err := New(validModel("a"), func(ctx context.Context) (*config.Model, error) {
		loads.Add(1)
		return validModel("b"), nil
	}, 20*time.Millisecond)
	require.NoError(t, err)

	l.Reload(context.Background())
	l.Close()
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, loads.Load())
}
