package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/roadquiz-backend/internal/clients/weaviate"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

const quizClassName = "Quiz"

// VectorService indexes generated quizzes in Weaviate and serves semantic
// similarity search over them.
type VectorService interface {
	EnsureSchema(ctx context.Context) error
	IndexQuiz(ctx context.Context, quizID uuid.UUID, quiz GeneratedQuiz, category, description string, roadElements []string) error
	SearchSimilar(ctx context.Context, query string, limit int) ([]map[string]any, error)
	Status(ctx context.Context) (bool, error)
}

type vectorService struct {
	log    *logger.Logger
	client weaviate.Client
}

func NewVectorService(log *logger.Logger, client weaviate.Client) VectorService {
	return &vectorService{
		log:    log.With("service", "VectorService"),
		client: client,
	}
}

func (vs *vectorService) EnsureSchema(ctx context.Context) error {
	return vs.client.EnsureClass(ctx, weaviate.ClassDefinition{
		Class: quizClassName,
		Properties: []weaviate.ClassProperty{
			{Name: "question", DataType: []string{"text"}},
			{Name: "options", DataType: []string{"text[]"}},
			{Name: "correctAnswer", DataType: []string{"int"}},
			{Name: "explanation", DataType: []string{"text"}},
			{Name: "category", DataType: []string{"text"}},
			{Name: "roadElements", DataType: []string{"text[]"}},
			{Name: "description", DataType: []string{"text"}},
		},
	})
}

func (vs *vectorService) IndexQuiz(ctx context.Context, quizID uuid.UUID, quiz GeneratedQuiz, category, description string, roadElements []string) error {
	if roadElements == nil {
		roadElements = []string{}
	}
	err := vs.client.CreateObject(ctx, weaviate.Object{
		ID:    quizID.String(),
		Class: quizClassName,
		Properties: map[string]any{
			"question":      quiz.Question,
			"options":       quiz.Options,
			"correctAnswer": quiz.Correct,
			"explanation":   quiz.Explanation,
			"category":      category,
			"roadElements":  roadElements,
			"description":   description,
		},
	})
	if err != nil {
		return fmt.Errorf("index quiz %s: %w", quizID, err)
	}
	return nil
}

func (vs *vectorService) SearchSimilar(ctx context.Context, query string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 5
	}
	results, err := vs.client.NearText(ctx, quizClassName, query, limit, []string{
		"question", "options", "correctAnswer", "explanation", "category",
	})
	if err != nil {
		return nil, fmt.Errorf("search similar quizzes: %w", err)
	}
	if results == nil {
		results = []map[string]any{}
	}
	return results, nil
}

func (vs *vectorService) Status(ctx context.Context) (bool, error) {
	return vs.client.Ready(ctx)
}
