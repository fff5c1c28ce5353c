package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"perfscope/internal/domain/analytics"
)

// Oracle produces a natural-language summary of a report set. Implementations
// are assumed unreliable (may reject) and slow (seconds-scale latency);
// callers must treat failures as expected.
type Oracle interface {
	Summarize(ctx context.Context, reasonings []string, criteria []analytics.CriterionAverage) (string, error)
}

const (
	maxReasonings    = 20
	maxReasoningLen  = 500
	systemPrompt     = "You are a performance analyst. Summarize the team's work reports in 3-4 plain sentences: overall quality, standout strengths, and the most pressing area to improve. No bullet points, no scores repeated verbatim."
	promptCriteriaHd = "Per-criterion averages (0-10):"
	promptReportsHd  = "Evaluation reasonings from individual reports:"
)

type OpenAIOracle struct {
	client *openai.Client
	model  string
}

func NewOpenAIOracle(apiKey, model string) *OpenAIOracle {
	return &OpenAIOracle{client: openai.NewClient(apiKey), model: model}
}

func (o *OpenAIOracle) Summarize(ctx context.Context, reasonings []string, criteria []analytics.CriterionAverage) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(reasonings, criteria)},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("summarization call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("summarization returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt assembles the user prompt from criteria averages and a capped
// sample of reasonings. Inputs are caller data; capping keeps the request
// within sane token bounds.
func BuildPrompt(reasonings []string, criteria []analytics.CriterionAverage) string {
	var b strings.Builder
	if len(criteria) > 0 {
		b.WriteString(promptCriteriaHd)
		b.WriteString("\n")
		for _, c := range criteria {
			fmt.Fprintf(&b, "- %s: %.1f (scored %d times)\n", c.Name, c.AverageScore, c.Frequency)
		}
		b.WriteString("\n")
	}

	b.WriteString(promptReportsHd)
	b.WriteString("\n")
	count := 0
	for _, reasoning := range reasonings {
		trimmed := strings.TrimSpace(reasoning)
		if trimmed == "" {
			continue
		}
		if len(trimmed) > maxReasoningLen {
			cut := maxReasoningLen
			// Back up to a rune boundary so the cap never splits a
			// multi-byte character.
			for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
				cut--
			}
			trimmed = trimmed[:cut]
		}
		fmt.Fprintf(&b, "- %s\n", trimmed)
		count++
		if count >= maxReasonings {
			break
		}
	}
	return b.String()
}
