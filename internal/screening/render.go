package screening

import (
	"strings"
	"time"

	"github.com/yourusername/screening-web/internal/model"
)

const (
	PlaceholderRole          = "N/A"
	PlaceholderResumeSkills  = "No skills detected"
	PlaceholderMissingSkills = "No missing skills"

	RecommendationAllMatched = "Your profile matches the job description well."
	recommendationPrefix     = "To improve your chances, consider learning: "
)

// RenderReport projects an analysis result into the report the page shows.
// It reads result and never writes to it.
func RenderReport(result model.AnalysisResult, now time.Time) model.Report {
	report := model.Report{
		JobRole:    result.PredictedJobRole,
		MatchScore: result.MatchScore,
		Demo:       result.Status == model.AnalysisStatusDemo,
		RenderedAt: now,
	}
	if strings.TrimSpace(report.JobRole) == "" {
		report.JobRole = PlaceholderRole
	}

	report.ResumeSkills = skillTags(result.ResumeSkills, false, PlaceholderResumeSkills)
	report.MissingSkills = skillTags(result.MissingSkills, true, PlaceholderMissingSkills)
	report.Recommendation = Recommendation(result.MissingSkills)

	return report
}

// Recommendation is the advice sentence for a list of missing skills
func Recommendation(missing []string) string {
	if len(missing) == 0 {
		return RecommendationAllMatched
	}
	return recommendationPrefix + strings.Join(missing, ", ") + "."
}

func skillTags(skills []string, missing bool, placeholder string) []model.SkillTag {
	if len(skills) == 0 {
		return []model.SkillTag{{Label: placeholder, Placeholder: true}}
	}
	tags := make([]model.SkillTag, 0, len(skills))
	for _, s := range skills {
		tags = append(tags, model.SkillTag{Label: s, Missing: missing})
	}
	return tags
}
