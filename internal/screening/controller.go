package screening

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/screening-web/internal/model"
)

// Analyzer is the analysis backend as the controller sees it
type Analyzer interface {
	Analyze(ctx context.Context, resume model.ResumeFile, jobDescription string) (*model.AnalysisResult, error)
	Ask(ctx context.Context, req model.ChatRequest) (*model.ChatReply, error)
}

// Session is one visitor's state. All reads and writes of state go through
// mu; network calls run without it so the session stays responsive.
type Session struct {
	ID uuid.UUID

	mu      sync.Mutex
	state   State
	cancels map[uint64]context.CancelFunc
}

func newSession() *Session {
	return &Session{
		ID:      uuid.New(),
		cancels: make(map[uint64]context.CancelFunc),
	}
}

// abortAll cancels every outstanding request of the session
func (s *Session) abortAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, cancel := range s.cancels {
		cancel()
		delete(s.cancels, token)
	}
}

// Controller runs actions against sessions: it reduces under the session
// lock, then performs the resulting effects and feeds their completions back.
type Controller struct {
	analyzer Analyzer
	rules    Rules
	now      func() time.Time
}

func NewController(analyzer Analyzer, rules Rules) *Controller {
	return &Controller{
		analyzer: analyzer,
		rules:    rules,
		now:      time.Now,
	}
}

// Rules returns the controller's tunables
func (c *Controller) Rules() Rules { return c.rules }

// Dispatch applies an action and waits for any request it starts. ctx bounds
// those requests: if it ends, the upload ends as a cancellation.
func (c *Controller) Dispatch(ctx context.Context, s *Session, a Action) View {
	s.mu.Lock()
	next, effects := Reduce(c.rules, s.state, a, c.now())
	s.state = next

	var runs []func() Action
	for _, e := range effects {
		switch e := e.(type) {
		case AbortEffect:
			if cancel, ok := s.cancels[e.Token]; ok {
				cancel()
				delete(s.cancels, e.Token)
				log.Info().Str("session", s.ID.String()).Uint64("token", e.Token).Msg("Request aborted")
			}
		case UploadEffect:
			reqCtx, cancel := context.WithTimeout(ctx, c.rules.AnalysisTimeout)
			s.cancels[e.Token] = cancel
			runs = append(runs, func() Action { return c.upload(reqCtx, s, e) })
		case ChatEffect:
			reqCtx, cancel := context.WithTimeout(ctx, c.rules.ChatTimeout)
			s.cancels[e.Token] = cancel
			runs = append(runs, func() Action { return c.chat(reqCtx, s, e) })
		}
	}
	view := c.viewLocked(s)
	s.mu.Unlock()

	for _, run := range runs {
		view = c.Dispatch(ctx, s, run())
	}
	return view
}

// Snapshot returns the current view without changing anything
func (c *Controller) Snapshot(s *Session) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.viewLocked(s)
}

// CurrentReport returns the last rendered report, or nil before any analysis
func (c *Controller) CurrentReport(s *Session) *model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Report == nil {
		return nil
	}
	r := *s.state.Report
	return &r
}

func (c *Controller) viewLocked(s *Session) View {
	v := s.state.View(c.rules)
	v.SessionID = s.ID.String()
	return v
}

func (c *Controller) upload(ctx context.Context, s *Session, e UploadEffect) Action {
	defer c.release(s, e.Token)

	start := c.now()
	result, err := c.analyzer.Analyze(ctx, e.Resume, e.Description)

	done := AnalysisDone{Token: e.Token, Result: result}
	switch {
	case err == nil:
		done.Failure = FailureNone
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		done.Failure = FailureTimeout
		log.Warn().Str("session", s.ID.String()).Dur("after", time.Since(start)).Msg("Analysis timed out")
	case ctx.Err() != nil:
		done.Failure = FailureCancelled
		log.Info().Str("session", s.ID.String()).Msg("Analysis cancelled")
	default:
		done.Failure = FailureTransport
		log.Warn().Err(err).Str("session", s.ID.String()).Msg("Analysis failed, falling back to demo data")
	}
	if err != nil {
		done.Result = nil
	}
	return done
}

func (c *Controller) chat(ctx context.Context, s *Session, e ChatEffect) Action {
	defer c.release(s, e.Token)

	reply, err := c.analyzer.Ask(ctx, e.Request)
	if err != nil {
		log.Warn().Err(err).Str("session", s.ID.String()).Msg("Chat request failed")
		return ChatDone{Token: e.Token}
	}
	return ChatDone{Token: e.Token, Answer: reply.Answer}
}

// release drops the cancel func of a finished request
func (c *Controller) release(s *Session, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.cancels[token]; ok {
		cancel()
		delete(s.cancels, token)
	}
}
