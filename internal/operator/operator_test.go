package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/storage"
)

type fakeTx struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rollbacks++
	return nil
}

type fakeSource struct {
	tx  *fakeTx
	err error
}

func (s *fakeSource) Write(context.Context) (*storage.Writer, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &storage.Writer{Tx: s.tx}, nil
}

type actionFunc func(ctx context.Context, writer *storage.Writer) error

func (f actionFunc) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func startDelegator(t *testing.T, source WriterSource) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(source, 2)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	d := startDelegator(t, &fakeSource{tx: tx})

	var performed bool
	err := d.Process(context.Background(), actionFunc(func(ctx context.Context, writer *storage.Writer) error {
		performed = true
		return nil
	}))

	require.NoError(t, err)
	assert.True(t, performed)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	tx := &fakeTx{}
	d := startDelegator(t, &fakeSource{tx: tx})
	cause := errors.New("insert recurrence failed")

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return cause
	}))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcess_RollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}
	d := startDelegator(t, &fakeSource{tx: tx})

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		panic("nil map")
	}))
	assert.ErrorContains(t, err, "panicked")
	assert.Equal(t, 1, tx.rollbacks)

	// The worker survives the panic.
	require.NoError(t, d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return nil
	})))
}

func TestProcess_BeginFailure(t *testing.T) {
	d := startDelegator(t, &fakeSource{err: errors.New("too many connections")})

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		t.Fatal("action must not run without a transaction")
		return nil
	}))
	assert.EqualError(t, err, "too many connections")
}

func TestProcess_CommitFailure(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	d := startDelegator(t, &fakeSource{tx: tx})

	err := d.Process(context.Background(), actionFunc(func(context.Context, *storage.Writer) error {
		return nil
	}))
	assert.EqualError(t, err, "serialization failure")
}

func TestProcess_CancelledContext(t *testing.T) {
	d := NewOperatorDelegator(&fakeSource{tx: &fakeTx{}}, 1)
	// No workers are started, so the item is never picked up.
	t.Cleanup(d.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, actionFunc(func(context.Context, *storage.Writer) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewOperatorDelegator_MinimumOneWorker(t *testing.T) {
	d := NewOperatorDelegator(&fakeSource{}, 0)
	assert.Equal(t, 1, d.numWorkers)
}
