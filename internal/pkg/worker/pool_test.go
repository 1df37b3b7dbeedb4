package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func TestSubmitRunsTask(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	err = pools.General.Submit(context.Background(), func(ctx context.Context) {
		ran = true
		wg.Done()
	})
	require.NoError(t, err)
	wg.Wait()
	require.True(t, ran)
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = pools.Analysis.Submit(ctx, func(ctx context.Context) {
		t.Fatal("task must not run on cancelled context")
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmitDetachedSkipsAfterShutdown(t *testing.T) {
	pools, err := NewPools(context.Background(), PoolConfig{GeneralPoolSize: 2, AnalysisPoolSize: 2})
	require.NoError(t, err)

	pools.Shutdown()

	ran := make(chan struct{}, 1)
	_ = pools.SubmitDetached("analysis", func(ctx context.Context) {
		ran <- struct{}{}
	})

	select {
	case <-ran:
		t.Fatal("detached task ran after shutdown")
	case <-time.After(100 * time.Millisecond):
	}
}
