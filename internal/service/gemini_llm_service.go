package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lingostep/placement/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// WritingEvaluator scores a free-text answer against its question prompt.
// Implementations return a score in [0,10] and a feedback string; callers must
// not trust the range and clamp it themselves.
type WritingEvaluator interface {
	Evaluate(ctx context.Context, question, answer string) (score float64, feedback string, err error)
}

type geminiLLMService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiLLMService(cfg *config.Config) (WritingEvaluator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Writing evaluation will be non-functional.")
		return &geminiLLMService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiLLMService{client: model, cfg: cfg}, nil
}

// parseScoreAndFeedback extracts the "Score:" and "Feedback:" sections from a
// raw model response.
func parseScoreAndFeedback(rawResponse string) (scoreStr string, feedbackStr string, err error) {
	scorePrefix := "Score:"
	feedbackPrefix := "Feedback:"

	scoreIndex := strings.Index(rawResponse, scorePrefix)
	feedbackIndex := strings.Index(rawResponse, feedbackPrefix)

	if scoreIndex == -1 {
		return "", rawResponse, fmt.Errorf("response does not contain 'Score:' prefix. Raw: %s", rawResponse)
	}

	endOfScoreLine := strings.Index(rawResponse[scoreIndex:], "\n")
	if endOfScoreLine == -1 {
		scoreStr = strings.TrimSpace(rawResponse[scoreIndex+len(scorePrefix):])
	} else {
		scoreStr = strings.TrimSpace(rawResponse[scoreIndex+len(scorePrefix) : scoreIndex+endOfScoreLine])
	}

	if feedbackIndex != -1 && feedbackIndex > scoreIndex {
		feedbackStr = strings.TrimSpace(rawResponse[feedbackIndex+len(feedbackPrefix):])
	} else {
		if endOfScoreLine != -1 && len(rawResponse) > scoreIndex+endOfScoreLine+1 {
			feedbackStr = strings.TrimSpace(rawResponse[scoreIndex+endOfScoreLine+1:])
			if strings.HasPrefix(strings.ToLower(feedbackStr), "feedback:") {
				feedbackStr = strings.TrimSpace(feedbackStr[len(feedbackPrefix):])
			}
		} else {
			feedbackStr = "Feedback not found in the expected format after the score."
		}
	}
	// Keep only the leading number of the score line.
	parts := strings.Fields(scoreStr)
	if len(parts) > 0 {
		scoreStr = parts[0]
	}

	return scoreStr, feedbackStr, nil
}

func (s *geminiLLMService) Evaluate(ctx context.Context, question, answer string) (float64, string, error) {
	if s.client == nil {
		return 0, "AI evaluation is unavailable (client not initialized).", fmt.Errorf("gemini client not initialized")
	}

	var prompt strings.Builder
	prompt.WriteString("You are an English placement examiner. Grade the student's written answer from 0 to 10 based on grammar, structure, and relevance to the question.\n\n")
	prompt.WriteString("Question:\n---\n")
	prompt.WriteString(question)
	prompt.WriteString("\n---\n\nStudent's Answer:\n---\n")
	prompt.WriteString(answer)
	prompt.WriteString("\n---\n\n")
	prompt.WriteString("Format your response strictly as:\n")
	prompt.WriteString("Score: [a number between 0 and 10]\n")
	prompt.WriteString("Feedback: [about five sentences of constructive feedback]\n")

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during writing evaluation")
		return 0, "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return 0, "", fmt.Errorf("gemini returned no content")
	}

	fullResponseText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullResponseText += string(txt)
		}
	}
	if fullResponseText == "" {
		return 0, "", fmt.Errorf("gemini returned no text content")
	}

	scoreStr, feedbackStr, parseErr := parseScoreAndFeedback(fullResponseText)
	if parseErr != nil {
		log.Warn().Err(parseErr).Str("rawResponse", fullResponseText).Msg("Failed to parse score and feedback from Gemini response")
		return 0, "", parseErr
	}

	parsedScore, scoreErr := strconv.ParseFloat(strings.TrimSpace(scoreStr), 64)
	if scoreErr != nil {
		log.Warn().Err(scoreErr).Str("scoreStr", scoreStr).Msg("Failed to parse score string to float")
		return 0, "", fmt.Errorf("could not parse score value (%q) from AI response: %w", scoreStr, scoreErr)
	}

	if parsedScore > 10 {
		parsedScore = 10
	}
	if parsedScore < 0 {
		parsedScore = 0
	}

	return parsedScore, strings.TrimSpace(feedbackStr), nil
}
