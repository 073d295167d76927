// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
)

// sessionSweeper periodically evicts expired sessions from the in-memory
// registry. Expired sessions are already rejected at parse time; the
// sweeper only keeps the registry from accumulating dead entries.
type sessionSweeper struct {
	auth     service.AuthService
	interval time.Duration
	stop     chan struct{}

	logger *logger.Logger
}

func newSessionSweeper(auth service.AuthService, interval time.Duration, logger *logger.Logger) *sessionSweeper {
	return &sessionSweeper{
		auth:     auth,
		interval: interval,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (s *sessionSweeper) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	go s.loop()
}

// Stop terminates the sweep loop. Safe to call at most once.
func (s *sessionSweeper) Stop() {
	close(s.stop)
}

func (s *sessionSweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if dropped := s.auth.SweepExpiredSessions(time.Now()); dropped > 0 {
				s.logger.Debug().Int("dropped", dropped).Msg("expired sessions swept")
			}
		}
	}
}
