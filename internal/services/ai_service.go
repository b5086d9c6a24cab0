package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	appErr "github.com/folioforge/engine/pkg/errors"
	"github.com/folioforge/engine/pkg/logger"
)

const aiModel = "gemini-1.5-flash"

type EnhanceInput struct {
	Text string `json:"text" validate:"required,max=4000"`
	Tone string `json:"tone" validate:"omitempty,oneof=professional casual confident concise"`
}

type BioInput struct {
	Name       string   `json:"name" validate:"required"`
	Headline   string   `json:"headline"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
}

type RecommendSkillsInput struct {
	Role     string   `json:"role" validate:"required"`
	Existing []string `json:"existing"`
}

// textGenerator is the slice of the Gemini client the service needs;
// tests substitute a fake.
type textGenerator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

type AIService interface {
	EnhanceContent(ctx context.Context, userID string, input *EnhanceInput) (string, error)
	GenerateBio(ctx context.Context, userID string, input *BioInput) (string, error)
	RecommendSkills(ctx context.Context, userID string, input *RecommendSkillsInput) ([]string, error)
}

type aiService struct {
	gen   textGenerator
	quota *aiQuota
}

var _ AIService = (*aiService)(nil)

// NewAIService wraps a Gemini client. The client is a process-wide handle
// created once at startup and reused across requests.
func NewAIService(client *genai.Client, hourlyCap int) AIService {
	return &aiService{
		gen:   &geminiGenerator{client: client},
		quota: newAIQuota(hourlyCap),
	}
}

type geminiGenerator struct {
	client *genai.Client
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(aiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// checkQuota consumes one token or returns the rate-limited error carrying
// the retry hint. Over-cap requests never reach the model, so they are not
// billed.
func (s *aiService) checkQuota(userID string) error {
	if s.quota.Allow(userID) {
		return nil
	}
	return appErr.New(appErr.CodeRateLimited, "hourly AI request limit reached").
		WithMeta("retry_after_seconds", 3600)
}

func (s *aiService) callModel(ctx context.Context, prompt string) (string, error) {
	out, err := s.gen.generate(ctx, prompt)
	if err != nil {
		logger.L().Error("AI generation failed", zap.Error(err))
		return "", appErr.Wrap(err, appErr.CodeUnavailable, "content generation is temporarily unavailable")
	}
	return out, nil
}

func (s *aiService) EnhanceContent(ctx context.Context, userID string, input *EnhanceInput) (string, error) {
	if err := s.checkQuota(userID); err != nil {
		return "", err
	}
	tone := input.Tone
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(
		"Rewrite the following portfolio text in a %s tone. Keep the facts, improve clarity and impact. Reply with the rewritten text only.\n\n%s",
		tone, input.Text,
	)
	return s.callModel(ctx, prompt)
}

func (s *aiService) GenerateBio(ctx context.Context, userID string, input *BioInput) (string, error) {
	if err := s.checkQuota(userID); err != nil {
		return "", err
	}
	prompt := fmt.Sprintf(
		"Write a short professional bio (max 120 words) for a portfolio page.\nName: %s\nHeadline: %s\nKey skills: %s\nExperience summary: %s\nReply with the bio only.",
		input.Name, input.Headline, strings.Join(input.Skills, ", "), input.Experience,
	)
	return s.callModel(ctx, prompt)
}

func (s *aiService) RecommendSkills(ctx context.Context, userID string, input *RecommendSkillsInput) ([]string, error) {
	if err := s.checkQuota(userID); err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(
		"Suggest up to 8 skills that complement the role %q, excluding: %s. Reply with a JSON array of strings only.",
		input.Role, strings.Join(input.Existing, ", "),
	)
	out, err := s.callModel(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseSkillList(out), nil
}

// parseSkillList accepts either the requested JSON array or a loosely
// formatted list the model sometimes returns instead.
func parseSkillList(out string) []string {
	trimmed := strings.TrimSpace(out)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var skills []string
	if err := json.Unmarshal([]byte(trimmed), &skills); err == nil {
		return skills
	}

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if line != "" {
			skills = append(skills, line)
		}
	}
	return skills
}
