package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yourusername/screening-web/internal/model"
)

// ScreeningClient talks to the resume analysis backend. Deadlines come from
// the caller's context so a cancel and a timeout end the request the same way.
type ScreeningClient struct {
	baseURL    string
	uploadPath string
	chatPath   string
	client     *http.Client
}

func NewScreeningClient(baseURL, uploadPath, chatPath string) *ScreeningClient {
	return &ScreeningClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		uploadPath: uploadPath,
		chatPath:   chatPath,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Endpoint, e.Code, e.Body)
}

// ── Upload ────────────────────────────────────────────

// Analyze posts the resume and job description as multipart form data
func (c *ScreeningClient) Analyze(ctx context.Context, resume model.ResumeFile, jobDescription string) (*model.AnalysisResult, error) {
	body, contentType, err := buildUploadBody(resume, jobDescription)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.uploadPath, body)
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	log.Info().
		Str("file", resume.Name).
		Int64("bytes", resume.Size).
		Int("descLen", len(jobDescription)).
		Msg("Submitting resume for analysis")

	respBody, err := c.do(req, c.uploadPath)
	if err != nil {
		return nil, err
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}

	log.Info().
		Str("role", result.PredictedJobRole).
		Int("skills", len(result.ResumeSkills)).
		Int("missing", len(result.MissingSkills)).
		Msg("Analysis complete")

	return &result, nil
}

func buildUploadBody(resume model.ResumeFile, jobDescription string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// CreateFormFile hardcodes application/octet-stream; keep the declared type
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, resume.Name))
	h.Set("Content-Type", model.PDFMediaType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating resume part: %w", err)
	}
	if _, err := part.Write(resume.Data); err != nil {
		return nil, "", fmt.Errorf("writing resume part: %w", err)
	}

	if err := w.WriteField("job_description", jobDescription); err != nil {
		return nil, "", fmt.Errorf("writing job_description field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// ── Chat ──────────────────────────────────────────────

// Ask sends a chat question along with the cached analysis context
func (c *ScreeningClient) Ask(ctx context.Context, chatReq model.ChatRequest) (*model.ChatReply, error) {
	if chatReq.MissingSkills == nil {
		chatReq.MissingSkills = []string{}
	}

	jsonBody, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.chatPath, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req, c.chatPath)
	if err != nil {
		return nil, err
	}

	var reply model.ChatReply
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return nil, fmt.Errorf("parsing chat response: %w", err)
	}
	if reply.Status == model.AnalysisStatusError {
		return nil, fmt.Errorf("chat backend error: %s", reply.Error)
	}
	if strings.TrimSpace(reply.Answer) == "" {
		return nil, fmt.Errorf("empty answer from chat backend")
	}

	return &reply, nil
}

func (c *ScreeningClient) do(req *http.Request, endpoint string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Endpoint: endpoint,
			Code:     resp.StatusCode,
			Body:     string(body[:min(len(body), 500)]),
		}
	}

	return body, nil
}
