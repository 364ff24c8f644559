package screening

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/yourusername/screening-web/internal/model"
)

var fixedNow = time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)

func TestRenderReportDataAnalyst(t *testing.T) {
	result := model.AnalysisResult{
		PredictedJobRole: "Data Analyst",
		ResumeSkills:     []string{"sql"},
		MissingSkills:    []string{"python"},
	}

	got := RenderReport(result, fixedNow)

	want := model.Report{
		JobRole:        "Data Analyst",
		ResumeSkills:   []model.SkillTag{{Label: "sql"}},
		MissingSkills:  []model.SkillTag{{Label: "python", Missing: true}},
		Recommendation: "To improve your chances, consider learning: python.",
		RenderedAt:     fixedNow,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderReportPlaceholders(t *testing.T) {
	got := RenderReport(model.AnalysisResult{}, fixedNow)

	if got.JobRole != PlaceholderRole {
		t.Errorf("JobRole = %q, want %q", got.JobRole, PlaceholderRole)
	}
	wantResume := []model.SkillTag{{Label: PlaceholderResumeSkills, Placeholder: true}}
	if diff := cmp.Diff(wantResume, got.ResumeSkills); diff != "" {
		t.Errorf("resume tags (-want +got):\n%s", diff)
	}
	wantMissing := []model.SkillTag{{Label: PlaceholderMissingSkills, Placeholder: true}}
	if diff := cmp.Diff(wantMissing, got.MissingSkills); diff != "" {
		t.Errorf("missing tags (-want +got):\n%s", diff)
	}
	if got.Recommendation != RecommendationAllMatched {
		t.Errorf("Recommendation = %q", got.Recommendation)
	}
}

func TestRenderReportOneTagPerSkill(t *testing.T) {
	result := model.AnalysisResult{
		PredictedJobRole: "Backend Engineer",
		ResumeSkills:     []string{"Go", "SQL", "Docker"},
		MissingSkills:    []string{"Kubernetes", "AWS"},
		MatchScore:       72,
		Status:           model.AnalysisStatusDemo,
	}

	got := RenderReport(result, fixedNow)

	if len(got.ResumeSkills) != 3 || len(got.MissingSkills) != 2 {
		t.Fatalf("tag counts = %d/%d", len(got.ResumeSkills), len(got.MissingSkills))
	}
	if got.Recommendation != "To improve your chances, consider learning: Kubernetes, AWS." {
		t.Errorf("Recommendation = %q", got.Recommendation)
	}
	if !got.Demo || got.MatchScore != 72 {
		t.Errorf("Demo = %v, MatchScore = %d", got.Demo, got.MatchScore)
	}
}

func TestRenderReportLeavesInputAlone(t *testing.T) {
	result := model.AnalysisResult{
		PredictedJobRole: "",
		ResumeSkills:     []string{"a", "b"},
		MissingSkills:    []string{"c"},
	}
	before := model.AnalysisResult{
		ResumeSkills:  []string{"a", "b"},
		MissingSkills: []string{"c"},
	}

	_ = RenderReport(result, fixedNow)

	if diff := cmp.Diff(before, result); diff != "" {
		t.Errorf("input changed (-before +after):\n%s", diff)
	}
}

func TestRecommendationAllMatchedOnlyWhenEmpty(t *testing.T) {
	if got := Recommendation(nil); got != RecommendationAllMatched {
		t.Errorf("nil: %q", got)
	}
	if got := Recommendation([]string{}); got != RecommendationAllMatched {
		t.Errorf("empty: %q", got)
	}
	if got := Recommendation([]string{"x"}); got == RecommendationAllMatched {
		t.Errorf("non-empty produced all-matched sentence")
	}
}
