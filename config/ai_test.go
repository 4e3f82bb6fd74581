package config

import "testing"

func TestParseGeneratedQuestions(t *testing.T) {
	t.Run("plain array", func(t *testing.T) {
		questions, err := parseGeneratedQuestions(`[{"question":"2+2?","options":["3","4"],"answer":"4","explanation":"basic addition"}]`)
		if err != nil {
			t.Fatalf("parse error = %v", err)
		}
		if len(questions) != 1 || questions[0].Answer != "4" {
			t.Errorf("questions = %+v", questions)
		}
	})

	t.Run("array wrapped in prose and fences", func(t *testing.T) {
		reply := "Here are your questions:\n```json\n[{\"question\":\"Q\",\"answer\":\"A\"}]\n```\nLet me know if you need more."
		questions, err := parseGeneratedQuestions(reply)
		if err != nil {
			t.Fatalf("parse error = %v", err)
		}
		if len(questions) != 1 || questions[0].Question != "Q" {
			t.Errorf("questions = %+v", questions)
		}
	})

	t.Run("no array in reply", func(t *testing.T) {
		if _, err := parseGeneratedQuestions("I cannot do that."); err == nil {
			t.Error("expected an error for a reply without JSON")
		}
	})

	t.Run("malformed array", func(t *testing.T) {
		if _, err := parseGeneratedQuestions(`[{"question": }]`); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})
}

func TestNewAIProviderWithoutKey(t *testing.T) {
	if p := NewAIProvider(&Config{}); p != nil {
		t.Error("provider must be nil when no API key is configured")
	}
}
