package domain

import (
	"strings"
	"testing"
	"time"
)

func TestPreviewContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"short stays intact", "hello", "hello"},
		{"exactly fifty runes", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"long gets ellipsis", strings.Repeat("a", 60), strings.Repeat("a", 50) + "..."},
		{"counts runes not bytes", strings.Repeat("é", 50), strings.Repeat("é", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviewContent(tt.content); got != tt.want {
				t.Errorf("PreviewContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortConversations(t *testing.T) {
	older := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)

	list := []Conversation{
		{CounterpartID: 1},
		{CounterpartID: 2, LastMessageTime: &older},
		{CounterpartID: 3, LastMessageTime: &newer},
		{CounterpartID: 4},
	}
	SortConversations(list)

	wantOrder := []int{3, 2, 1, 4}
	for i, want := range wantOrder {
		if list[i].CounterpartID != want {
			t.Fatalf("position %d = counterpart %d, want %d", i, list[i].CounterpartID, want)
		}
	}
}
