package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/screening-web/internal/model"
)

func TestMemoryReportRepoRoundTrip(t *testing.T) {
	repo := NewMemoryReportRepo()
	ctx := context.Background()

	report := model.Report{
		JobRole:        "Data Analyst",
		Recommendation: "To improve your chances, consider learning: python.",
		RenderedAt:     time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	saved, err := repo.Save(ctx, report)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatal("no id assigned")
	}

	got, err := repo.FindByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil || got.Report.JobRole != "Data Analyst" {
		t.Errorf("got %+v", got)
	}
}

func TestMemoryReportRepoMissing(t *testing.T) {
	got, err := NewMemoryReportRepo().FindByID(context.Background(), uuid.New())
	if err != nil || got != nil {
		t.Errorf("got %+v, %v; want nil, nil", got, err)
	}
}
