package usecase

import (
	"context"

	"schoolmgmt/domain"
)

const fallbackChatResponse = "Thank you for your message. For detailed information, " +
	"please contact the school office or visit during office hours (8 AM - 4 PM)."

var (
	faqSuggestions      = []string{"Admission process", "Fee structure", "School timings", "Contact us"}
	chatSuggestions     = []string{"Tell me more", "Contact school", "Visit admissions"}
	fallbackSuggestions = []string{"Admission inquiry", "Fee details", "School timing", "Contact information"}
)

// AIUsecase answers chatbot questions and generates exam questions through
// the language-model provider. The chatbot degrades to canned responses when
// no provider is configured; question generation does not.
type AIUsecase struct {
	provider domain.AIProvider
}

func NewAIUsecase(provider domain.AIProvider) *AIUsecase {
	return &AIUsecase{provider: provider}
}

// Chat answers from the FAQ set first; only unmatched messages reach the
// provider. Provider failures fall back to the canned default so the public
// chatbot never errors out.
func (au *AIUsecase) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if answer, ok := domain.MatchFAQ(req.Message); ok {
		return &domain.ChatResponse{Response: answer, Suggestions: faqSuggestions}, nil
	}

	if au.provider != nil {
		answer, err := au.provider.Chat(ctx, req.History, req.Message)
		if err == nil {
			return &domain.ChatResponse{Response: answer, Suggestions: chatSuggestions}, nil
		}
		log.WithError(err).Warn("chat provider failed, serving fallback")
	}

	return &domain.ChatResponse{Response: fallbackChatResponse, Suggestions: fallbackSuggestions}, nil
}

func (au *AIUsecase) GenerateQuestions(ctx context.Context, req *domain.GenerateQuestionsRequest) ([]domain.GeneratedQuestion, error) {
	if req.Count == 0 {
		req.Count = 5
	}
	if req.Difficulty == "" {
		req.Difficulty = domain.DifficultyMedium
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	if req.Count < 1 || req.Count > 20 {
		return nil, domain.Validationf("count must be between 1 and 20")
	}
	if au.provider == nil {
		return nil, domain.Upstreamf("AI provider is not configured")
	}

	questions, err := au.provider.GenerateQuestions(ctx, req)
	if err != nil {
		log.WithError(err).Error("question generation failed")
		return nil, domain.Upstreamf("question generation failed")
	}
	return questions, nil
}
