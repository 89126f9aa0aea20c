package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Justlrnal4/golf-group-organizer/models"
)

// Failure modes of the plan synthesis call. Rate limit and quota are
// retryable by the caller; malformed output is not without changed inputs.
var (
	ErrSynthRateLimited    = errors.New("synthesis: rate limit exceeded")
	ErrSynthQuotaExhausted = errors.New("synthesis: credits depleted")
	ErrSynthUnreachable    = errors.New("synthesis: service unreachable")
	ErrSynthMalformed      = errors.New("synthesis: malformed output")
)

// PlanCandidate is one untrusted plan proposal returned by the AI gateway.
// Everything in it is re-validated against the matched course set before
// anything is persisted.
type PlanCandidate struct {
	Title         string   `json:"title"`
	CourseName    string   `json:"course_name"`
	CourseAddress string   `json:"course_address"`
	TimeWindow    struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"time_window"`
	EstimatedCost string   `json:"estimated_cost"`
	DriveTime     string   `json:"drive_time"`
	Rationale     []string `json:"rationale"`
	FitScore      *int     `json:"fit_score"`
}

// SynthesisRequest carries the structured inputs for one prompt.
type SynthesisRequest struct {
	Outing      models.Outing
	GroupSize   int
	Windows     []OverlapWindow
	Constraints ConstraintEnvelope
	Courses     []models.Course
}

// SynthesisService talks to an OpenAI-style chat completions gateway and
// turns its answer into plan candidates.
type SynthesisService struct {
	client     *http.Client
	gatewayURL string
	apiKey     string
	model      string
}

func NewSynthesisService() *SynthesisService {
	gatewayURL := os.Getenv("AI_GATEWAY_URL")
	if gatewayURL == "" {
		gatewayURL = "https://ai.gateway.lovable.dev/v1/chat/completions"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash"
	}
	return &SynthesisService{
		client:     &http.Client{Timeout: 60 * time.Second},
		gatewayURL: gatewayURL,
		apiKey:     os.Getenv("AI_API_KEY"),
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GeneratePlanCandidates runs one synthesis call. No automatic retry; the
// typed errors tell the caller which failures are worth retrying.
func (s *SynthesisService) GeneratePlanCandidates(ctx context.Context, req SynthesisRequest) ([]PlanCandidate, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a golf outing planner. Generate plan options as valid JSON only, no markdown or extra text.",
			},
			{Role: "user", Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Printf("synthesis request failed: %v", err)
		return nil, ErrSynthUnreachable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrSynthRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, ErrSynthQuotaExhausted
	case resp.StatusCode != http.StatusOK:
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("synthesis gateway error: %d %s", resp.StatusCode, string(respBody))
		return nil, ErrSynthUnreachable
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, ErrSynthMalformed
	}
	if len(chat.Choices) == 0 {
		return nil, ErrSynthMalformed
	}

	return parseCandidates(chat.Choices[0].Message.Content)
}

// parseCandidates extracts the JSON array from the model's reply. Models
// sometimes wrap the array in prose, so the first [...] span is tried
// before the raw text.
func parseCandidates(generated string) ([]PlanCandidate, error) {
	payload := generated
	if start := strings.Index(generated, "["); start >= 0 {
		if end := strings.LastIndex(generated, "]"); end > start {
			payload = generated[start : end+1]
		}
	}

	var candidates []PlanCandidate
	if err := json.Unmarshal([]byte(payload), &candidates); err != nil {
		log.Printf("synthesis parse failure: %v", err)
		return nil, ErrSynthMalformed
	}
	if len(candidates) == 0 {
		return nil, ErrSynthMalformed
	}
	return candidates, nil
}

func buildPrompt(req SynthesisRequest) string {
	topWindows := req.Windows
	if len(topWindows) > maxPromptWindows {
		topWindows = topWindows[:maxPromptWindows]
	}

	var windowsList strings.Builder
	for _, w := range topWindows {
		fmt.Fprintf(&windowsList, "%s %s: %d/%d available\n", w.Date, w.TimeSlot, w.ParticipantCount, w.TotalParticipants)
	}

	var coursesList strings.Builder
	for _, c := range req.Courses {
		fmt.Fprintf(&coursesList, "- %s: %s, Price: %s, Holes: %s\n", c.Name, c.Address, c.PriceTier, c.HolesAvailable)
	}

	return fmt.Sprintf(`Generate 2-3 plan options for a group golf outing.

Group constraints:
- Best time windows:
%s- Budget: %s
- Max drive from %s: %d minutes
- Holes: %s
- Group size: %d people

Available courses:
%s
Return a JSON array of 2-3 plan cards. Each card must have this exact structure:
{
  "title": "Saturday Morning at [Course Name]",
  "course_name": "[exact course name from list]",
  "course_address": "[exact address from list]",
  "time_window": {"start": "2024-01-20T08:00:00Z", "end": "2024-01-20T12:00:00Z"},
  "estimated_cost": "$XX per person",
  "drive_time": "XX min from center",
  "rationale": ["reason 1", "reason 2", "reason 3"],
  "fit_score": 85
}

Use the actual dates from the time windows provided.
Vary the options: one budget-friendly, one best-fit, one premium if courses allow.
Output valid JSON only, no markdown, no explanation.`,
		windowsList.String(),
		req.Constraints.Budget,
		req.Outing.LocationZip,
		req.Constraints.MaxDriveMinutes,
		req.Constraints.HolesPreference,
		req.GroupSize,
		coursesList.String())
}

const maxPromptWindows = 5
