package gcp

import (
	"context"
	"fmt"
	"time"

	vision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type Vision interface {
	LabelImageBytes(ctx context.Context, img []byte) ([]Label, error)
	Close() error
}

// Label is a single annotation returned for one frame.
type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

type visionService struct {
	log *logger.Logger

	visionClient *vision.ImageAnnotatorClient
	maxResults   int32
	callTimeout  time.Duration
}

func NewVision(log *logger.Logger) (Vision, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	slog := log.With("service", "gcp.Vision")

	ctx := context.Background()
	opts := ClientOptionsFromEnv()

	vClient, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}

	return &visionService{
		log:          slog,
		visionClient: vClient,
		maxResults:   20,
		callTimeout:  30 * time.Second,
	}, nil
}

func (s *visionService) Close() error {
	if s == nil {
		return nil
	}
	if s.visionClient != nil {
		_ = s.visionClient.Close()
	}
	return nil
}

func (s *visionService) LabelImageBytes(ctx context.Context, img []byte) ([]Label, error) {
	if len(img) == 0 {
		return []Label{}, nil
	}

	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	req := &visionpb.AnnotateImageRequest{
		Image: &visionpb.Image{Content: img},
		Features: []*visionpb.Feature{
			{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: s.maxResults},
		},
	}

	br := &visionpb.BatchAnnotateImagesRequest{Requests: []*visionpb.AnnotateImageRequest{req}}
	resp, err := s.visionClient.BatchAnnotateImages(ctx, br)
	if err != nil {
		return nil, fmt.Errorf("vision BatchAnnotateImages: %w", err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return []Label{}, nil
	}

	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return nil, fmt.Errorf("vision annotate error: %s", r0.Error.Message)
	}

	out := make([]Label, 0, len(r0.LabelAnnotations))
	for _, la := range r0.LabelAnnotations {
		if la == nil {
			continue
		}
		out = append(out, Label{
			Description: la.Description,
			Score:       float64(la.Score),
		})
	}
	return out, nil
}
