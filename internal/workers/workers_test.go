// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/sommelier/internal/config"
	"github.com/MKhiriev/sommelier/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWorkers(t *testing.T) *Workers {
	t.Helper()

	w := New(config.ClientWorkers{PoolSize: 2, QueueSize: 8}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
	return w
}

func TestLoop_RunsInPostingOrder(t *testing.T) {
	w := startWorkers(t)

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	wg.Add(50)
	for i := 0; i < 50; i++ {
		w.Main(func() {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}
	wg.Wait()

	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestLoop_PostFromInsideLoop_DoesNotBlock(t *testing.T) {
	w := startWorkers(t)

	done := make(chan struct{})
	w.Main(func() {
		w.Main(func() { close(done) })
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("nested Main was not executed")
	}
}

func TestLoop_PanickingTask_KeepsRunning(t *testing.T) {
	w := startWorkers(t)

	done := make(chan struct{})
	w.Main(func() { panic("boom") })
	w.Main(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop stopped after a panicking task")
	}
}

func TestLaunch_ResultDeliveredAfterWork(t *testing.T) {
	w := startWorkers(t)

	got := make(chan int, 1)
	Launch(w, func() int {
		return 21 * 2
	}, func(v int) {
		got <- v
	})

	select {
	case v := <-got:
		assert.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("launch result not delivered")
	}
}

func TestImmediate_RunsInline(t *testing.T) {
	var got []string
	Launch(Immediate(), func() string {
		got = append(got, "work")
		return "result"
	}, func(r string) {
		got = append(got, r)
	})

	assert.Equal(t, []string{"work", "result"}, got)
}

func TestNewPool_Defaults(t *testing.T) {
	p := NewPool(0, -1, logger.Nop())

	assert.Equal(t, defaultPoolSize, p.size)
	assert.Equal(t, defaultQueueSize, cap(p.tasks))
}

func TestPool_Background_FullQueueDoesNotBlock(t *testing.T) {
	p := NewPool(1, 1, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	release := make(chan struct{})
	started := make(chan struct{})
	p.Background(func() {
		close(started)
		<-release
	})
	<-started

	var wg sync.WaitGroup
	wg.Add(3)
	returned := make(chan struct{})
	go func() {
		// one fills the queue, the rest overflow
		for i := 0; i < 3; i++ {
			p.Background(wg.Done)
		}
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Background blocked on a full queue")
	}

	close(release)
	wg.Wait()
}
