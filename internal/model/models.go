package model

import (
	"time"

	"github.com/google/uuid"
)

// ── Analysis backend wire types ───────────────────────

// AnalysisResult is what the analysis backend returns for an uploaded resume.
// Only the first three fields are required; the rest are filled by newer
// backend versions and are carried through when present.
type AnalysisResult struct {
	PredictedJobRole     string   `json:"predicted_job_role"`
	ResumeSkills         []string `json:"resume_skills"`
	MissingSkills        []string `json:"missing_skills"`
	MatchScore           int      `json:"match_score,omitempty"`
	JobDescriptionSkills []string `json:"job_description_skills,omitempty"`
	Status               string   `json:"status,omitempty"`
	Message              string   `json:"message,omitempty"`
	AnalysisID           string   `json:"analysis_id,omitempty"`
}

// Analysis result status values
const (
	AnalysisStatusSuccess = "success"
	AnalysisStatusDemo    = "demo"
	AnalysisStatusError   = "error"
)

// ChatRequest is the JSON body sent to the chat endpoint
type ChatRequest struct {
	Question      string   `json:"question"`
	JobRole       string   `json:"job_role"`
	MissingSkills []string `json:"missing_skills"`
}

// ChatReply is the JSON body returned by the chat endpoint
type ChatReply struct {
	Answer string `json:"answer"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ── Session-side types ────────────────────────────────

// ResumeFile is the resume the user picked, held in memory until analysis
type ResumeFile struct {
	Name      string    `json:"name"`
	MediaType string    `json:"mediaType"`
	Size      int64     `json:"size"`
	Pages     int       `json:"pages,omitempty"`
	Data      []byte    `json:"-"`
	AddedAt   time.Time `json:"addedAt"`
}

// PDFMediaType is the only media type accepted for resumes
const PDFMediaType = "application/pdf"

// Sender identifies who authored a chat turn
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatTurn is one message in the transcript
type ChatTurn struct {
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

// SkillTag is one rendered skill chip. Placeholder tags stand in for an
// empty list and carry no skill.
type SkillTag struct {
	Label       string `json:"label"`
	Missing     bool   `json:"missing,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

// Report is the rendered projection of an AnalysisResult
type Report struct {
	JobRole        string     `json:"jobRole"`
	ResumeSkills   []SkillTag `json:"resumeSkills"`
	MissingSkills  []SkillTag `json:"missingSkills"`
	Recommendation string     `json:"recommendation"`
	MatchScore     int        `json:"matchScore,omitempty"`
	Demo           bool       `json:"demo,omitempty"`
	RenderedAt     time.Time  `json:"renderedAt"`
}

// SharedReport is a report persisted for a share link
type SharedReport struct {
	ID        uuid.UUID `json:"id"`
	Report    Report    `json:"report"`
	CreatedAt time.Time `json:"createdAt"`
}

// ── Demo payload ──────────────────────────────────────

// DemoAnalysis returns the fixed payload shown when the backend cannot be
// reached or when the user asks for a demo. Each call returns fresh slices.
func DemoAnalysis() AnalysisResult {
	return AnalysisResult{
		PredictedJobRole:     "Software Developer",
		ResumeSkills:         []string{"Python", "JavaScript", "React", "HTML/CSS", "Git", "SQL"},
		MissingSkills:        []string{"Docker", "AWS", "Kubernetes", "TypeScript"},
		MatchScore:           65,
		JobDescriptionSkills: []string{"Python", "JavaScript", "React", "Docker", "AWS"},
		Status:               AnalysisStatusDemo,
		Message:              "Using demo data",
	}
}
