package workers

import (
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the daemon's background workers. Today that is just
// the session sweeper; new workers are appended here.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionSweeper(services.AuthService, cfg.SessionSweepInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
