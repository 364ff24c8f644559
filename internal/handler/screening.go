package handler

import (
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/screening-web/internal/middleware"
	"github.com/yourusername/screening-web/internal/model"
	"github.com/yourusername/screening-web/internal/screening"
	"github.com/yourusername/screening-web/internal/service"
)

type ScreeningHandler struct {
	ctrl           *screening.Controller
	maxResumeBytes int64
}

func NewScreeningHandler(ctrl *screening.Controller, maxResumeBytes int64) *ScreeningHandler {
	return &ScreeningHandler{ctrl: ctrl, maxResumeBytes: maxResumeBytes}
}

// State handles GET /api/state
func (h *ScreeningHandler) State(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No session"})
		return
	}
	c.JSON(http.StatusOK, h.ctrl.Snapshot(s))
}

// SelectResume handles POST /api/resume
// Accepts one file in the "resume" field; drag-and-drop posts here too
func (h *ScreeningHandler) SelectResume(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxResumeBytes+1024*1024)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size > h.maxResumeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "File too large. Maximum size is " + screening.FormatSize(h.maxResumeBytes) + ".",
		})
		return
	}

	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil {
		mediaType = header.Header.Get("Content-Type")
	}

	resume := model.ResumeFile{
		Name:      header.Filename,
		MediaType: mediaType,
		Size:      header.Size,
	}

	// Non-PDFs are rejected by the reducer; no need to read them
	if mediaType == model.PDFMediaType {
		data, err := io.ReadAll(file)
		if err != nil {
			log.Error().Err(err).Msg("Failed to read uploaded resume")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
			return
		}
		resume.Data = data
		resume.Size = int64(len(data))

		if pages, err := service.CountPDFPages(data); err != nil {
			log.Warn().Err(err).Str("filename", header.Filename).Msg("Could not read PDF page count")
		} else {
			resume.Pages = pages
		}
	}

	h.dispatch(c, screening.SelectFile{File: resume})
}

type descriptionRequest struct {
	JobDescription *string `form:"job_description" json:"job_description"`
}

// UpdateDescription handles POST /api/description
// Stores the draft and returns the character counter
func (h *ScreeningHandler) UpdateDescription(c *gin.Context) {
	var req descriptionRequest
	if err := c.ShouldBind(&req); err != nil || req.JobDescription == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_description is required"})
		return
	}
	h.dispatch(c, screening.UpdateDescription{Text: *req.JobDescription})
}

// Analyze handles POST /api/analyze
// An optional job_description in the body replaces the stored draft first.
// Blocks until the analysis finishes, fails, times out or is cancelled.
func (h *ScreeningHandler) Analyze(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No session"})
		return
	}

	var req descriptionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}
	if req.JobDescription != nil {
		h.ctrl.Dispatch(c.Request.Context(), s, screening.UpdateDescription{Text: *req.JobDescription})
	}

	h.dispatch(c, screening.Analyze{})
}

// Cancel handles POST /api/cancel
func (h *ScreeningHandler) Cancel(c *gin.Context) {
	h.dispatch(c, screening.Cancel{})
}

// Chat handles POST /api/chat
func (h *ScreeningHandler) Chat(c *gin.Context) {
	var req struct {
		Question string `form:"question" json:"question"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	h.dispatch(c, screening.SendChat{Question: req.Question})
}

// QuickQuestion handles POST /api/quick/:key
func (h *ScreeningHandler) QuickQuestion(c *gin.Context) {
	h.dispatch(c, screening.QuickQuestion{Key: c.Param("key")})
}

// Reset handles POST /api/reset
func (h *ScreeningHandler) Reset(c *gin.Context) {
	h.dispatch(c, screening.Reset{})
}

// Demo handles POST /api/demo
func (h *ScreeningHandler) Demo(c *gin.Context) {
	h.dispatch(c, screening.Demo{})
}

// Help handles GET /api/help
func (h *ScreeningHandler) Help(c *gin.Context) {
	type quick struct {
		Key      string `json:"key"`
		Question string `json:"question"`
	}
	var quicks []quick
	for _, k := range screening.QuickQuestionKeys() {
		quicks = append(quicks, quick{Key: k, Question: screening.QuickQuestions[k]})
	}

	c.JSON(http.StatusOK, gin.H{
		"help":           screening.HelpText,
		"quickQuestions": quicks,
		"minDescription": h.ctrl.Rules().MinDescriptionLen,
	})
}

func (h *ScreeningHandler) dispatch(c *gin.Context, action screening.Action) {
	s := middleware.GetSession(c)
	if s == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No session"})
		return
	}

	view := h.ctrl.Dispatch(c.Request.Context(), s, action)

	event := log.Debug()
	if view.Notice != nil && view.Notice.Level != screening.NoticeInfo {
		event = log.Info().Str("notice", view.Notice.Text)
	}
	event.Str("session", s.ID.String()).Str("action", screening.ActionName(action)).Msg("Action handled")

	c.JSON(http.StatusOK, view)
}
