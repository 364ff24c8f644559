package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/screening-web/internal/middleware"
	"github.com/yourusername/screening-web/internal/model"
	"github.com/yourusername/screening-web/internal/screening"
)

// ReportStore persists reports behind share links
type ReportStore interface {
	Save(ctx context.Context, report model.Report) (*model.SharedReport, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.SharedReport, error)
}

type ReportHandler struct {
	ctrl  *screening.Controller
	store ReportStore
}

func NewReportHandler(ctrl *screening.Controller, store ReportStore) *ReportHandler {
	return &ReportHandler{ctrl: ctrl, store: store}
}

// Print handles GET /api/report/print
// Returns the current report as plain text
func (h *ReportHandler) Print(c *gin.Context) {
	report, ok := h.currentReport(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, formatReport(report))
}

// Save handles GET /api/report/save
// Returns the current report as a JSON download
func (h *ReportHandler) Save(c *gin.Context) {
	report, ok := h.currentReport(c)
	if !ok {
		return
	}

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	filename := fmt.Sprintf("resume-report-%s.json", report.RenderedAt.Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json", body)
}

// Share handles POST /api/report/share
// Persists the current report and returns its share link
func (h *ReportHandler) Share(c *gin.Context) {
	report, ok := h.currentReport(c)
	if !ok {
		return
	}

	shared, err := h.store.Save(c.Request.Context(), *report)
	if err != nil {
		log.Error().Err(err).Msg("Failed to share report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share report"})
		return
	}

	log.Info().Str("id", shared.ID.String()).Str("role", report.JobRole).Msg("Report shared")

	c.JSON(http.StatusCreated, gin.H{
		"id":  shared.ID,
		"url": "/shared/" + shared.ID.String(),
	})
}

// Shared handles GET /shared/:id
func (h *ReportHandler) Shared(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	shared, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to load shared report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		return
	}
	if shared == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, shared)
}

func (h *ReportHandler) currentReport(c *gin.Context) (*model.Report, bool) {
	s := middleware.GetSession(c)
	if s == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No session"})
		return nil, false
	}
	report := h.ctrl.CurrentReport(s)
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report yet. Analyze a resume first."})
		return nil, false
	}
	return report, true
}

func formatReport(r *model.Report) string {
	var parts []string
	parts = append(parts, "=== Resume Screening Report ===")
	if r.Demo {
		parts = append(parts, "(demo data)")
	}
	parts = append(parts, fmt.Sprintf("Predicted Job Role: %s", r.JobRole))
	if r.MatchScore > 0 {
		parts = append(parts, fmt.Sprintf("Match Score: %d%%", r.MatchScore))
	}
	parts = append(parts, fmt.Sprintf("Resume Skills: %s", joinTags(r.ResumeSkills)))
	parts = append(parts, fmt.Sprintf("Missing Skills: %s", joinTags(r.MissingSkills)))
	parts = append(parts, fmt.Sprintf("Recommendation: %s", r.Recommendation))
	parts = append(parts, fmt.Sprintf("Analyzed At: %s", r.RenderedAt.Format("2006-01-02 15:04:05")))

	return strings.Join(parts, "\n") + "\n"
}

func joinTags(tags []model.SkillTag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label)
	}
	return strings.Join(labels, ", ")
}
