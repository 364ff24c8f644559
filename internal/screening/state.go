// Package screening holds the upload/chat client: per-session state, the
// typed actions a visitor can take, a pure reducer over them, and the
// controller that runs the resulting network effects.
package screening

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yourusername/screening-web/internal/model"
)

// Rules are the tunables the reducer and controller need
type Rules struct {
	MinDescriptionLen int
	AnalysisTimeout   time.Duration
	ChatTimeout       time.Duration
}

func DefaultRules() Rules {
	return Rules{
		MinDescriptionLen: 50,
		AnalysisTimeout:   60 * time.Second,
		ChatTimeout:       30 * time.Second,
	}
}

// NoticeLevel tells the page how to style a notice
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is the single user-visible message of the last action
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// State is everything one visitor session knows. Reduce treats it as a
// value: slices and pointers are replaced, never written through.
type State struct {
	Resume      *model.ResumeFile
	Description string
	ChatDraft   string

	Analysis   *model.AnalysisResult
	Report     *model.Report
	Transcript []model.ChatTurn

	Analyzing bool
	Loading   bool
	Chatting  bool

	// Tokens of the outstanding requests; zero means none
	UploadToken uint64
	ChatToken   uint64
	LastToken   uint64

	Notice *Notice
}

// Trigger labels for the analyze control
const (
	LabelAnalyzeIdle = "Analyze Resume"
	LabelAnalyzeBusy = "Analyzing..."
)

// ResumeView is the file affordance: what was picked and how big it is
type ResumeView struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"sizeLabel"`
	Pages     int    `json:"pages,omitempty"`
}

// View is the render-ready projection of State returned by every action
type View struct {
	SessionID string `json:"sessionId"`

	Resume           *ResumeView `json:"resume"`
	Description      string      `json:"description"`
	DescriptionChars int         `json:"descriptionChars"`
	DescriptionMin   int         `json:"descriptionMin"`
	DescriptionReady bool        `json:"descriptionReady"`

	Analyzing    bool   `json:"analyzing"`
	Loading      bool   `json:"loading"`
	AnalyzeLabel string `json:"analyzeLabel"`

	Chatting   bool             `json:"chatting"`
	ChatDraft  string           `json:"chatDraft"`
	Transcript []model.ChatTurn `json:"transcript"`

	Report *model.Report `json:"report"`
	Notice *Notice       `json:"notice"`
}

// View projects the state for display
func (s State) View(rules Rules) View {
	chars := descriptionLen(s.Description)
	v := View{
		Description:      s.Description,
		DescriptionChars: chars,
		DescriptionMin:   rules.MinDescriptionLen,
		DescriptionReady: chars >= rules.MinDescriptionLen,
		Analyzing:        s.Analyzing,
		Loading:          s.Loading,
		AnalyzeLabel:     LabelAnalyzeIdle,
		Chatting:         s.Chatting,
		ChatDraft:        s.ChatDraft,
		Transcript:       append([]model.ChatTurn{}, s.Transcript...),
		Report:           s.Report,
		Notice:           s.Notice,
	}
	if s.Analyzing {
		v.AnalyzeLabel = LabelAnalyzeBusy
	}
	if s.Resume != nil {
		v.Resume = &ResumeView{
			Name:      s.Resume.Name,
			Size:      s.Resume.Size,
			SizeLabel: FormatSize(s.Resume.Size),
			Pages:     s.Resume.Pages,
		}
	}
	return v
}

// descriptionLen counts characters the way the counter shows them:
// trimmed, in runes rather than bytes
func descriptionLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// FormatSize renders a byte count as B, KB or MB
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
