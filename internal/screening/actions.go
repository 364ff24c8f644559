package screening

import "github.com/yourusername/screening-web/internal/model"

// Action is one thing that can happen to a session: a user action or the
// completion of a request it started.
type Action interface {
	actionName() string
}

type SelectFile struct{ File model.ResumeFile }
type UpdateDescription struct{ Text string }
type Analyze struct{}
type Cancel struct{}
type SendChat struct{ Question string }
type QuickQuestion struct{ Key string }
type Reset struct{}
type Demo struct{}

// Failure classifies how an upload ended
type Failure int

const (
	FailureNone Failure = iota
	FailureTimeout
	FailureCancelled
	FailureTransport
)

// AnalysisDone reports the end of the upload started under Token
type AnalysisDone struct {
	Token   uint64
	Result  *model.AnalysisResult
	Failure Failure
}

// ChatDone reports the end of the chat request started under Token.
// An empty Answer means the request failed.
type ChatDone struct {
	Token  uint64
	Answer string
}

func (SelectFile) actionName() string        { return "select_file" }
func (UpdateDescription) actionName() string { return "update_description" }
func (Analyze) actionName() string           { return "analyze" }
func (Cancel) actionName() string            { return "cancel" }
func (SendChat) actionName() string          { return "send_chat" }
func (QuickQuestion) actionName() string     { return "quick_question" }
func (Reset) actionName() string             { return "reset" }
func (Demo) actionName() string              { return "demo" }
func (AnalysisDone) actionName() string      { return "analysis_done" }
func (ChatDone) actionName() string          { return "chat_done" }

// ActionName exposes the action's name for logging
func ActionName(a Action) string { return a.actionName() }

// Effect is network work the reducer asks the controller to do
type Effect interface {
	effectName() string
}

// UploadEffect posts the resume and description for analysis
type UploadEffect struct {
	Token       uint64
	Resume      model.ResumeFile
	Description string
}

// ChatEffect posts a chat question with the cached analysis context
type ChatEffect struct {
	Token   uint64
	Request model.ChatRequest
}

// AbortEffect cancels the outstanding request started under Token
type AbortEffect struct{ Token uint64 }

func (UploadEffect) effectName() string { return "upload" }
func (ChatEffect) effectName() string   { return "chat" }
func (AbortEffect) effectName() string  { return "abort" }
