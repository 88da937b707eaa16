// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/mock"
)

func TestTokenWorker_RefreshesOnInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkout := mock.NewMockCheckoutClient(ctrl)

	refreshed := make(chan struct{}, 16)
	checkout.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(_ context.Context) error {
			refreshed <- struct{}{}
			return nil
		}).
		MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewTokenWorker(ctx, checkout, 5*time.Millisecond, logger.Nop())
	go w.Run()

	for i := 0; i < 2; i++ {
		select {
		case <-refreshed:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for a scheduled refresh")
		}
	}
}

func TestTokenWorker_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkout := mock.NewMockCheckoutClient(ctrl)
	checkout.EXPECT().Refresh(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	w := NewTokenWorker(ctx, checkout, 5*time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run()
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestTokenWorker_KeepsTickingAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkout := mock.NewMockCheckoutClient(ctrl)

	var calls atomic.Int64
	checkout.EXPECT().
		Refresh(gomock.Any()).
		DoAndReturn(func(_ context.Context) error {
			calls.Add(1)
			return assert.AnError
		}).
		MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewTokenWorker(ctx, checkout, 5*time.Millisecond, logger.Nop())
	go w.Run()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond,
		"a failed refresh should not stop the worker")
}

// ── Workers aggregate ───────────────────────────────────────────────────────

type countingWorker struct {
	ran atomic.Bool
}

func (w *countingWorker) Run() { w.ran.Store(true) }

func TestNewWorkers_SkipsNilEntries(t *testing.T) {
	w := NewWorkers(nil, &countingWorker{}, nil)
	assert.Len(t, w.workers, 1)
}

func TestWorkers_RunLaunchesAll(t *testing.T) {
	first := &countingWorker{}
	second := &countingWorker{}

	NewWorkers(first, second).Run()

	require.Eventually(t, func() bool {
		return first.ran.Load() && second.ran.Load()
	}, time.Second, time.Millisecond)
}
