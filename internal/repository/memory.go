package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/screening-web/internal/model"
)

// MemoryReportRepo keeps shared reports in process memory. Used when no
// database is configured; reports are lost on restart.
type MemoryReportRepo struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]model.SharedReport
	now     func() time.Time
}

func NewMemoryReportRepo() *MemoryReportRepo {
	return &MemoryReportRepo{
		reports: make(map[uuid.UUID]model.SharedReport),
		now:     time.Now,
	}
}

// Save stores a report and returns it with its share id
func (r *MemoryReportRepo) Save(_ context.Context, report model.Report) (*model.SharedReport, error) {
	shared := model.SharedReport{ID: uuid.New(), Report: report, CreatedAt: r.now()}

	r.mu.Lock()
	r.reports[shared.ID] = shared
	r.mu.Unlock()

	return &shared, nil
}

// FindByID returns a shared report, or nil if there is none
func (r *MemoryReportRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SharedReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shared, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	return &shared, nil
}
