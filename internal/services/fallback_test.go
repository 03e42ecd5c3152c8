package services

import (
	"testing"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
)

func TestDefaultQuizCoversEveryCategory(t *testing.T) {
	for _, cat := range types.Categories() {
		q := DefaultQuiz(cat)
		if q.Question == "" {
			t.Fatalf("category %q: empty question", cat)
		}
		if len(q.Options) != 4 {
			t.Fatalf("category %q: expected 4 options, got %d", cat, len(q.Options))
		}
		if q.Correct < 0 || q.Correct > 3 {
			t.Fatalf("category %q: correct index %d out of range", cat, q.Correct)
		}
		if q.Explanation == "" {
			t.Fatalf("category %q: empty explanation", cat)
		}
	}
}

func TestDefaultQuizUnknownCategoryFallsBackToSignals(t *testing.T) {
	got := DefaultQuiz("존재하지 않는 카테고리")
	want := DefaultQuiz(types.CategorySignals)
	if got.Question != want.Question {
		t.Fatalf("unknown category: got %q, want signals quiz %q", got.Question, want.Question)
	}
}
