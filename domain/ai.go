package domain

import (
	"context"
	"strings"
)

const (
	QuestionTypeMCQ       = "mcq"
	QuestionTypeShort     = "short"
	QuestionTypeLong      = "long"
	QuestionTypeFillBlank = "fill_blank"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string        `json:"message" valid:"required~Message is required"`
	History []ChatMessage `json:"history"`
}

type ChatResponse struct {
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
}

type GenerateQuestionsRequest struct {
	Subject      string `json:"subject" valid:"required~Subject is required"`
	Topic        string `json:"topic" valid:"required~Topic is required"`
	ClassLevel   string `json:"class_level" valid:"required~Class level is required"`
	QuestionType string `json:"question_type" valid:"required~Question type is required,in(mcq|short|long|fill_blank)~Invalid question type"`
	Count        int    `json:"count"`
	Difficulty   string `json:"difficulty" valid:"in(easy|medium|hard)~Invalid difficulty"`
}

type GeneratedQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options,omitempty"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
}

// AIProvider is the language-model collaborator. A nil provider means an
// API key was never configured.
type AIProvider interface {
	Chat(ctx context.Context, history []ChatMessage, message string) (string, error)
	GenerateQuestions(ctx context.Context, req *GenerateQuestionsRequest) ([]GeneratedQuestion, error)
}

// Canned answers for the public chatbot. Keyword matching runs before any
// provider call so the common questions never cost a model round trip.
var faqAnswers = map[string]string{
	"admission":  "For admissions, please visit the Admissions page or contact the admissions office. Applications for the current academic year are open.",
	"fees":       "The fee structure varies by class. Detailed fee information is available in the parent portal after login, or from the accounts office.",
	"timing":     "School hours are 8:00 AM to 2:30 PM Monday through Friday and 8:00 AM to 12:30 PM on Saturday. The office is open 8:00 AM to 4:00 PM.",
	"uniform":    "School uniforms are available from the designated vendors listed in the student handbook.",
	"transport":  "Transport is available on the major routes. Contact the transport department for routes and fares.",
	"calendar":   "The academic calendar is published in the student and parent portals, including vacations, exam schedules, and holidays.",
	"contact":    "You can reach the school office by email or phone during office hours, 8 AM to 4 PM.",
	"curriculum": "The school follows the CBSE curriculum from Nursery to Class 12, with Science, Commerce, and Humanities streams in senior secondary.",
}

// Ordered so a message touching two categories always resolves the same way.
var faqKeywords = []struct {
	category string
	words    []string
}{
	{"admission", []string{"admission", "apply", "enroll", "registration", "join"}},
	{"fees", []string{"fee", "payment", "cost", "charge", "tuition"}},
	{"timing", []string{"timing", "time", "schedule", "hours", "when"}},
	{"uniform", []string{"uniform", "dress", "clothes"}},
	{"transport", []string{"transport", "bus", "van", "pick", "drop"}},
	{"calendar", []string{"calendar", "holiday", "vacation", "exam date"}},
	{"contact", []string{"contact", "phone", "email", "address", "reach"}},
	{"curriculum", []string{"curriculum", "syllabus", "cbse", "subjects", "stream"}},
}

// MatchFAQ answers a chatbot message from the canned FAQ set by keyword.
// The second return is false when no category matches.
func MatchFAQ(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, entry := range faqKeywords {
		for _, w := range entry.words {
			if strings.Contains(lower, w) {
				return faqAnswers[entry.category], true
			}
		}
	}
	return "", false
}
