// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run()
	ws.Run()
	ws.Run()

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

func TestSessionSweeper_SweepsOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)

	swept := make(chan struct{})
	auth.EXPECT().
		SweepExpiredSessions(gomock.Any()).
		DoAndReturn(func(time.Time) int {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 1
		}).
		AnyTimes()

	sweeper := newSessionSweeper(auth, 5*time.Millisecond, logger.Nop())
	sweeper.Run()
	defer sweeper.Stop()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper never ticked")
	}
}

func TestSessionSweeper_StopTerminatesLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().SweepExpiredSessions(gomock.Any()).Return(0).AnyTimes()

	sweeper := newSessionSweeper(auth, time.Millisecond, logger.Nop())
	sweeper.Run()
	sweeper.Stop()

	// a stopped sweeper must not keep ticking; give the loop a beat to exit
	time.Sleep(20 * time.Millisecond)
}
