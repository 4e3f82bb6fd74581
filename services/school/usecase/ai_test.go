package usecase

import (
	"context"
	"testing"

	"schoolmgmt/domain"
)

type fakeAIProvider struct {
	chatReply    string
	chatErr      error
	questions    []domain.GeneratedQuestion
	questionsErr error
	chatCalls    int
}

func (f *fakeAIProvider) Chat(_ context.Context, _ []domain.ChatMessage, _ string) (string, error) {
	f.chatCalls++
	return f.chatReply, f.chatErr
}

func (f *fakeAIProvider) GenerateQuestions(_ context.Context, _ *domain.GenerateQuestionsRequest) ([]domain.GeneratedQuestion, error) {
	return f.questions, f.questionsErr
}

func TestChat(t *testing.T) {
	t.Run("faq match short-circuits the provider", func(t *testing.T) {
		provider := &fakeAIProvider{chatReply: "model answer"}
		uc := NewAIUsecase(provider)
		resp, err := uc.Chat(context.Background(), &domain.ChatRequest{Message: "how do the admissions work"})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if provider.chatCalls != 0 {
			t.Error("provider must not be called for an FAQ match")
		}
		if resp.Response == "" || len(resp.Suggestions) == 0 {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("unmatched message goes to the provider", func(t *testing.T) {
		provider := &fakeAIProvider{chatReply: "model answer"}
		uc := NewAIUsecase(provider)
		resp, err := uc.Chat(context.Background(), &domain.ChatRequest{Message: "write a poem about fractions"})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if provider.chatCalls != 1 {
			t.Errorf("provider calls = %d, want 1", provider.chatCalls)
		}
		if resp.Response != "model answer" {
			t.Errorf("response = %q", resp.Response)
		}
	})

	t.Run("nil provider serves the canned fallback", func(t *testing.T) {
		uc := NewAIUsecase(nil)
		resp, err := uc.Chat(context.Background(), &domain.ChatRequest{Message: "write a poem about fractions"})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if resp.Response != fallbackChatResponse {
			t.Errorf("response = %q, want the fallback", resp.Response)
		}
	})

	t.Run("provider failure serves the canned fallback", func(t *testing.T) {
		provider := &fakeAIProvider{chatErr: domain.Upstreamf("model unavailable")}
		uc := NewAIUsecase(provider)
		resp, err := uc.Chat(context.Background(), &domain.ChatRequest{Message: "write a poem about fractions"})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if resp.Response != fallbackChatResponse {
			t.Errorf("response = %q, want the fallback", resp.Response)
		}
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		uc := NewAIUsecase(nil)
		_, err := uc.Chat(context.Background(), &domain.ChatRequest{})
		assertCategory(t, err, domain.ErrValidationFailed)
	})
}

func TestGenerateQuestions(t *testing.T) {
	valid := func() *domain.GenerateQuestionsRequest {
		return &domain.GenerateQuestionsRequest{
			Subject:      "Mathematics",
			Topic:        "Fractions",
			ClassLevel:   "6",
			QuestionType: domain.QuestionTypeMCQ,
		}
	}

	t.Run("defaults count and difficulty", func(t *testing.T) {
		provider := &fakeAIProvider{questions: []domain.GeneratedQuestion{{Question: "Q1", Answer: "A"}}}
		uc := NewAIUsecase(provider)
		req := valid()
		questions, err := uc.GenerateQuestions(context.Background(), req)
		if err != nil {
			t.Fatalf("GenerateQuestions() error = %v", err)
		}
		if req.Count != 5 || req.Difficulty != domain.DifficultyMedium {
			t.Errorf("defaults = %d/%s, want 5/medium", req.Count, req.Difficulty)
		}
		if len(questions) != 1 {
			t.Errorf("got %d questions, want 1", len(questions))
		}
	})

	t.Run("nil provider is upstream unavailable", func(t *testing.T) {
		uc := NewAIUsecase(nil)
		_, err := uc.GenerateQuestions(context.Background(), valid())
		assertCategory(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("provider failure is upstream unavailable", func(t *testing.T) {
		provider := &fakeAIProvider{questionsErr: domain.Upstreamf("model unavailable")}
		uc := NewAIUsecase(provider)
		_, err := uc.GenerateQuestions(context.Background(), valid())
		assertCategory(t, err, domain.ErrUpstreamUnavailable)
	})

	t.Run("invalid question type is rejected", func(t *testing.T) {
		uc := NewAIUsecase(&fakeAIProvider{})
		req := valid()
		req.QuestionType = "essay"
		_, err := uc.GenerateQuestions(context.Background(), req)
		assertCategory(t, err, domain.ErrValidationFailed)
	})

	t.Run("count out of range is rejected", func(t *testing.T) {
		uc := NewAIUsecase(&fakeAIProvider{})
		req := valid()
		req.Count = 50
		_, err := uc.GenerateQuestions(context.Background(), req)
		assertCategory(t, err, domain.ErrValidationFailed)
	})
}
