package services

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/yungbote/roadquiz-backend/internal/clients/gcp"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
	"github.com/yungbote/roadquiz-backend/internal/platform/localmedia"
)

// roadKeywords filters vision labels down to traffic-relevant elements.
var roadKeywords = []string{"car", "road", "traffic", "signal", "crossing", "vehicle"}

const maxAnalyzedFrames = 10

// SceneAnalyzer extracts road elements from a dashcam video. Analysis is
// best-effort: any failure yields an empty element list, never an error, so
// the quiz pipeline can continue with its fallback path.
type SceneAnalyzer interface {
	AnalyzeVideo(ctx context.Context, videoPath string) []string
}

type sceneAnalyzer struct {
	log    *logger.Logger
	vision gcp.Vision
	media  localmedia.Tools
}

func NewSceneAnalyzer(log *logger.Logger, vision gcp.Vision, media localmedia.Tools) SceneAnalyzer {
	return &sceneAnalyzer{
		log:    log.With("service", "SceneAnalyzer"),
		vision: vision,
		media:  media,
	}
}

func (sa *sceneAnalyzer) AnalyzeVideo(ctx context.Context, videoPath string) []string {
	if sa.vision == nil {
		sa.log.Warn("Vision client not configured, skipping scene analysis")
		return []string{}
	}

	frameDir, err := os.MkdirTemp("", "roadquiz-frames-*")
	if err != nil {
		sa.log.Warn("Frame dir creation failed", "error", err)
		return []string{}
	}
	defer os.RemoveAll(frameDir)

	frames, err := sa.media.ExtractKeyframes(ctx, videoPath, frameDir, localmedia.KeyframeOptions{
		IntervalSeconds: 1.0,
		Width:           640,
		MaxFrames:       maxAnalyzedFrames,
		Format:          "jpg",
	})
	if err != nil {
		sa.log.Warn("Keyframe extraction failed", "video_path", videoPath, "error", err)
		return []string{}
	}

	seen := map[string]bool{}
	elements := []string{}
	for _, framePath := range frames {
		img, rErr := os.ReadFile(framePath)
		if rErr != nil {
			sa.log.Warn("Frame read failed", "frame", framePath, "error", rErr)
			continue
		}
		labels, lErr := sa.vision.LabelImageBytes(ctx, img)
		if lErr != nil {
			sa.log.Warn("Frame labeling failed", "frame", framePath, "error", lErr)
			continue
		}
		for _, label := range labels {
			desc := strings.TrimSpace(label.Description)
			if desc == "" || !isRoadElement(desc) {
				continue
			}
			key := strings.ToLower(desc)
			if seen[key] {
				continue
			}
			seen[key] = true
			elements = append(elements, desc)
		}
	}

	sort.Strings(elements)
	return elements
}

func isRoadElement(label string) bool {
	lower := strings.ToLower(label)
	for _, kw := range roadKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
