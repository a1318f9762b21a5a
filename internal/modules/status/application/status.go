package application

import (
	"time"

	"github.com/tathaha/aiode/internal/modules/status/domain"
)

// StatusInteractor handles the status use case.
type StatusInteractor struct {
	version   string
	startedAt time.Time
}

// NewStatusInteractor creates a StatusInteractor anchored at the current time.
func NewStatusInteractor(version string) *StatusInteractor {
	return &StatusInteractor{
		version:   version,
		startedAt: time.Now(),
	}
}

// Execute builds a status report from the given gateway measurements.
func (s *StatusInteractor) Execute(latency time.Duration, guilds int) *domain.Report {
	return domain.NewReport(s.version, s.startedAt, latency, guilds)
}
