package screening

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/screening-web/internal/model"
)

// User-visible messages
const (
	MsgNotPDF           = "Please upload a PDF resume only."
	MsgNoResume         = "Please upload a resume first."
	MsgNoDescription    = "Please enter a job description."
	MsgAnalysisDone     = "Analysis complete."
	MsgCancelled        = "Analysis cancelled."
	MsgBackendDown      = "Could not reach the analysis service. Showing demo results."
	MsgDemo             = "Showing demo results."
	MsgReset            = "Session reset."
	MsgUnknownQuick     = "Unknown quick question."
	MsgChatUnavailable  = "Unable to reach chatbot service."
	msgShortDescription = "Job description should be at least %d characters."
	msgTimeout          = "Analysis timed out after %d seconds. Please try again."
)

// ShortDescriptionMessage is the notice for a description under the minimum
func ShortDescriptionMessage(rules Rules) string {
	return fmt.Sprintf(msgShortDescription, rules.MinDescriptionLen)
}

// TimeoutMessage is the notice for an upload that hit its deadline
func TimeoutMessage(rules Rules) string {
	return fmt.Sprintf(msgTimeout, int(rules.AnalysisTimeout.Seconds()))
}

// Reduce applies one action to a state and returns the next state with the
// network effects to run. It has no side effects and does not modify s.
func Reduce(rules Rules, s State, a Action, now time.Time) (State, []Effect) {
	switch a := a.(type) {
	case SelectFile:
		return selectFile(s, a.File)
	case UpdateDescription:
		next := s
		next.Description = a.Text
		return next, nil
	case Analyze:
		return analyze(rules, s)
	case Cancel:
		return cancel(s)
	case AnalysisDone:
		return analysisDone(rules, s, a, now), nil
	case SendChat:
		return sendChat(s, a.Question, now)
	case QuickQuestion:
		q, ok := QuickQuestions[a.Key]
		if !ok {
			next := s
			next.Notice = &Notice{Level: NoticeError, Text: MsgUnknownQuick}
			return next, nil
		}
		next := s
		next.ChatDraft = q
		return sendChat(next, q, now)
	case ChatDone:
		return chatDone(s, a, now), nil
	case Reset:
		return reset(s)
	case Demo:
		if s.Analyzing {
			return s, nil
		}
		next := withAnalysis(s, model.DemoAnalysis(), now)
		next.Notice = &Notice{Level: NoticeInfo, Text: MsgDemo}
		return next, nil
	}
	return s, nil
}

func selectFile(s State, f model.ResumeFile) (State, []Effect) {
	next := s
	if f.MediaType != model.PDFMediaType {
		next.Notice = &Notice{Level: NoticeError, Text: MsgNotPDF}
		return next, nil
	}
	next.Resume = &f
	next.Notice = &Notice{
		Level: NoticeInfo,
		Text:  fmt.Sprintf("Selected %s (%s)", f.Name, FormatSize(f.Size)),
	}
	return next, nil
}

func analyze(rules Rules, s State) (State, []Effect) {
	if s.Analyzing {
		return s, nil
	}

	next := s
	desc := strings.TrimSpace(s.Description)
	switch {
	case s.Resume == nil:
		next.Notice = &Notice{Level: NoticeError, Text: MsgNoResume}
		return next, nil
	case desc == "":
		next.Notice = &Notice{Level: NoticeError, Text: MsgNoDescription}
		return next, nil
	case descriptionLen(desc) < rules.MinDescriptionLen:
		next.Notice = &Notice{Level: NoticeError, Text: ShortDescriptionMessage(rules)}
		return next, nil
	}

	next.LastToken++
	next.UploadToken = next.LastToken
	next.Analyzing = true
	next.Loading = true
	next.Notice = nil

	return next, []Effect{UploadEffect{
		Token:       next.UploadToken,
		Resume:      *s.Resume,
		Description: desc,
	}}
}

func cancel(s State) (State, []Effect) {
	next := s
	var effects []Effect
	if s.UploadToken != 0 {
		effects = append(effects, AbortEffect{Token: s.UploadToken})
		next.Notice = &Notice{Level: NoticeInfo, Text: MsgCancelled}
	}
	next.UploadToken = 0
	next.Analyzing = false
	next.Loading = false
	return next, effects
}

func analysisDone(rules Rules, s State, a AnalysisDone, now time.Time) State {
	// Completions of cancelled or reset uploads are dropped
	if s.UploadToken == 0 || a.Token != s.UploadToken {
		return s
	}

	next := s
	next.UploadToken = 0
	next.Analyzing = false
	next.Loading = false

	switch {
	case a.Failure == FailureTimeout:
		next.Notice = &Notice{Level: NoticeWarning, Text: TimeoutMessage(rules)}
	case a.Failure == FailureCancelled:
		next.Notice = &Notice{Level: NoticeInfo, Text: MsgCancelled}
	case a.Failure == FailureTransport || a.Result == nil:
		next = withAnalysis(next, model.DemoAnalysis(), now)
		next.Notice = &Notice{Level: NoticeWarning, Text: MsgBackendDown}
	default:
		next = withAnalysis(next, *a.Result, now)
		next.Notice = &Notice{Level: NoticeInfo, Text: MsgAnalysisDone}
	}
	return next
}

func withAnalysis(s State, result model.AnalysisResult, now time.Time) State {
	next := s
	report := RenderReport(result, now)
	next.Analysis = &result
	next.Report = &report
	return next
}

func sendChat(s State, question string, now time.Time) (State, []Effect) {
	q := strings.TrimSpace(question)
	if q == "" || s.Chatting {
		return s, nil
	}

	next := s
	next.Transcript = appendTurn(s.Transcript, model.ChatTurn{Sender: model.SenderUser, Text: q, At: now})
	next.ChatDraft = ""
	next.Chatting = true
	next.LastToken++
	next.ChatToken = next.LastToken

	req := model.ChatRequest{Question: q, MissingSkills: []string{}}
	if s.Analysis != nil {
		req.JobRole = s.Analysis.PredictedJobRole
		req.MissingSkills = append(req.MissingSkills, s.Analysis.MissingSkills...)
	}

	return next, []Effect{ChatEffect{Token: next.ChatToken, Request: req}}
}

func chatDone(s State, a ChatDone, now time.Time) State {
	if s.ChatToken == 0 || a.Token != s.ChatToken {
		return s
	}

	next := s
	next.ChatToken = 0
	next.Chatting = false

	answer := strings.TrimSpace(a.Answer)
	if answer == "" {
		answer = MsgChatUnavailable
	}
	next.Transcript = appendTurn(s.Transcript, model.ChatTurn{Sender: model.SenderBot, Text: answer, At: now})
	return next
}

func reset(s State) (State, []Effect) {
	var effects []Effect
	if s.UploadToken != 0 {
		effects = append(effects, AbortEffect{Token: s.UploadToken})
	}
	if s.ChatToken != 0 {
		effects = append(effects, AbortEffect{Token: s.ChatToken})
	}
	return State{
		LastToken: s.LastToken,
		Notice:    &Notice{Level: NoticeInfo, Text: MsgReset},
	}, effects
}

// appendTurn copies before appending so earlier states keep their transcript
func appendTurn(turns []model.ChatTurn, t model.ChatTurn) []model.ChatTurn {
	out := make([]model.ChatTurn, len(turns), len(turns)+1)
	copy(out, turns)
	return append(out, t)
}
