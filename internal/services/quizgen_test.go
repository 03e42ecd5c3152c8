package services

import (
	"context"
	"errors"
	"testing"

	types "github.com/yungbote/roadquiz-backend/internal/domain"
)

type fakeAIClient struct {
	text    string
	textErr error

	jsonObj map[string]any
	jsonErr error
}

func (f *fakeAIClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	return f.text, f.textErr
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	return f.jsonObj, f.jsonErr
}

func newQuizGenForTest(ai *fakeAIClient, t *testing.T) *quizGenService {
	log := testLogger(t)
	return &quizGenService{log: log, ai: ai}
}

func TestDescribeSceneFallsBackOnError(t *testing.T) {
	svc := newQuizGenForTest(&fakeAIClient{textErr: errors.New("boom")}, t)

	desc, fromModel := svc.DescribeScene(context.Background(), []string{"car", "traffic light"})
	if fromModel {
		t.Fatalf("expected fallback description")
	}
	if desc != fallbackDescription {
		t.Fatalf("got %q, want %q", desc, fallbackDescription)
	}
}

func TestDescribeSceneReturnsModelText(t *testing.T) {
	svc := newQuizGenForTest(&fakeAIClient{text: "교차로에 접근하는 차량이 감지되었습니다."}, t)

	desc, fromModel := svc.DescribeScene(context.Background(), []string{"car"})
	if !fromModel {
		t.Fatalf("expected model description")
	}
	if desc != "교차로에 접근하는 차량이 감지되었습니다." {
		t.Fatalf("unexpected description %q", desc)
	}
}

func TestSynthesizeQuizValidOutput(t *testing.T) {
	svc := newQuizGenForTest(&fakeAIClient{jsonObj: map[string]any{
		"question":    "황색 신호에서 올바른 행동은?",
		"options":     []any{"가속한다", "정지선 앞에 정지한다", "경적을 울린다", "차로를 바꾼다"},
		"correct":     float64(1),
		"explanation": "황색 신호에서는 정지해야 합니다.",
	}}, t)

	quiz, fromModel := svc.SynthesizeQuiz(context.Background(), "desc", types.CategorySignals)
	if !fromModel {
		t.Fatalf("expected model quiz")
	}
	if quiz.Correct != 1 || len(quiz.Options) != 4 {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}
}

func TestSynthesizeQuizFallsBackOnError(t *testing.T) {
	svc := newQuizGenForTest(&fakeAIClient{jsonErr: errors.New("rate limited")}, t)

	quiz, fromModel := svc.SynthesizeQuiz(context.Background(), "desc", types.CategoryHighway)
	if fromModel {
		t.Fatalf("expected fallback quiz")
	}
	want := DefaultQuiz(types.CategoryHighway)
	if quiz.Question != want.Question {
		t.Fatalf("got %q, want highway fallback %q", quiz.Question, want.Question)
	}
}

func TestSynthesizeQuizFallsBackOnInvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		obj  map[string]any
	}{
		{
			name: "too_few_options",
			obj: map[string]any{
				"question":    "q",
				"options":     []any{"a", "b"},
				"correct":     float64(0),
				"explanation": "e",
			},
		},
		{
			name: "correct_out_of_range",
			obj: map[string]any{
				"question":    "q",
				"options":     []any{"a", "b", "c", "d"},
				"correct":     float64(7),
				"explanation": "e",
			},
		},
		{
			name: "empty_question",
			obj: map[string]any{
				"question":    "  ",
				"options":     []any{"a", "b", "c", "d"},
				"correct":     float64(0),
				"explanation": "e",
			},
		},
		{
			name: "empty_option",
			obj: map[string]any{
				"question":    "q",
				"options":     []any{"a", "", "c", "d"},
				"correct":     float64(0),
				"explanation": "e",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newQuizGenForTest(&fakeAIClient{jsonObj: tc.obj}, t)
			quiz, fromModel := svc.SynthesizeQuiz(context.Background(), "desc", types.CategoryParking)
			if fromModel {
				t.Fatalf("expected fallback for invalid payload")
			}
			want := DefaultQuiz(types.CategoryParking)
			if quiz.Question != want.Question {
				t.Fatalf("got %q, want parking fallback", quiz.Question)
			}
		})
	}
}

func TestParseGeneratedQuizTrimsFields(t *testing.T) {
	quiz, err := parseGeneratedQuiz(map[string]any{
		"question":    "  질문  ",
		"options":     []any{" a ", "b", "c", "d"},
		"correct":     float64(2),
		"explanation": " 설명 ",
	})
	if err != nil {
		t.Fatalf("parseGeneratedQuiz: %v", err)
	}
	if quiz.Question != "질문" || quiz.Options[0] != "a" || quiz.Explanation != "설명" {
		t.Fatalf("fields not trimmed: %+v", quiz)
	}
}
