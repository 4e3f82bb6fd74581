package config

import (
	"context"
	"fmt"
	"strings"

	"schoolmgmt/domain"

	"github.com/bytedance/sonic"
	openai "github.com/sashabaranov/go-openai"
)

const chatSystemPrompt = "You are a helpful assistant for a school. " +
	"You help students, parents, and visitors with information about the school. " +
	"Be friendly, professional, and concise. " +
	"If you don't know something specific, suggest contacting the school office."

var questionTypePhrases = map[string]string{
	domain.QuestionTypeMCQ:       "multiple choice questions with 4 options",
	domain.QuestionTypeShort:     "short answer questions (2-3 lines answer)",
	domain.QuestionTypeLong:      "long answer questions (detailed explanation required)",
	domain.QuestionTypeFillBlank: "fill in the blank questions",
}

// openaiProvider implements domain.AIProvider over the OpenAI chat API.
type openaiProvider struct {
	client *openai.Client
	model  string
}

func NewAIProvider(cfg *Config) domain.AIProvider {
	if cfg.OpenAIKey == "" {
		return nil
	}
	return &openaiProvider{client: openai.NewClient(cfg.OpenAIKey), model: cfg.OpenAIModel}
}

func (p *openaiProvider) Chat(ctx context.Context, history []domain.ChatMessage, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: chatSystemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openaiProvider) GenerateQuestions(ctx context.Context, req *domain.GenerateQuestionsRequest) ([]domain.GeneratedQuestion, error) {
	prompt := fmt.Sprintf(`Generate %d %s for %s on the topic %q for Class %s students.
Difficulty level: %s

For each question, provide:
1. The question
2. Options (for MCQ) or leave empty
3. The correct answer
4. A brief explanation

Return a JSON array of objects with keys: question, options (array or null), answer, explanation`,
		req.Count, questionTypePhrases[req.QuestionType], req.Subject, req.Topic, req.ClassLevel, req.Difficulty)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are an expert teacher creating exam questions."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("openai question generation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai question generation returned no choices")
	}

	return parseGeneratedQuestions(resp.Choices[0].Message.Content)
}

// parseGeneratedQuestions extracts the JSON array from a model reply that may
// wrap it in prose or code fences.
func parseGeneratedQuestions(content string) ([]domain.GeneratedQuestion, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array in model reply")
	}
	var questions []domain.GeneratedQuestion
	if err := sonic.Unmarshal([]byte(content[start:end+1]), &questions); err != nil {
		return nil, fmt.Errorf("could not parse generated questions: %w", err)
	}
	return questions, nil
}
