package localmedia

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

// Tools wraps the ffmpeg binary for dashcam frame extraction.
//
// REQUIRED BINARIES in runtime:
// - ffmpeg for video -> keyframes
//
// This service is synchronous; keep calls off the hot request path where
// possible.
type Tools interface {
	AssertReady(ctx context.Context) error

	ExtractKeyframes(ctx context.Context, videoPath string, outDir string, opts KeyframeOptions) ([]string, error)
}

type KeyframeOptions struct {
	IntervalSeconds float64
	SceneThreshold  float64

	Width       int
	MaxFrames   int
	Format      string // "jpg" or "png"
	JPEGQuality int
}

type tools struct {
	log *logger.Logger

	ffmpegPath string

	workRoot string

	defaultTimeout time.Duration
}

func New(log *logger.Logger) Tools {
	slog := log.With("service", "MediaTools")
	return &tools{
		log:            slog,
		ffmpegPath:     "ffmpeg",
		workRoot:       "/tmp/roadquiz-media",
		defaultTimeout: 10 * time.Minute,
	}
}

func (m *tools) AssertReady(ctx context.Context) error {
	ctx = ctxutil.Default(ctx)
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := exec.LookPath(m.ffmpegPath); err != nil {
		return fmt.Errorf("missing required binary %q in PATH: %w", m.ffmpegPath, err)
	}
	if err := os.MkdirAll(m.workRoot, 0o755); err != nil {
		return fmt.Errorf("create workRoot: %w", err)
	}
	return nil
}

func (m *tools) ExtractKeyframes(ctx context.Context, videoPath string, outDir string, opts KeyframeOptions) ([]string, error) {
	ctx = ctxutil.Default(ctx)
	if err := m.AssertReady(ctx); err != nil {
		return nil, err
	}
	if videoPath == "" {
		return nil, fmt.Errorf("videoPath required")
	}
	if outDir == "" {
		return nil, fmt.Errorf("outDir required")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir outDir: %w", err)
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "jpg"
	}
	if format != "jpg" && format != "jpeg" && format != "png" {
		return nil, fmt.Errorf("unsupported keyframe format: %s", format)
	}

	maxFrames := opts.MaxFrames
	if maxFrames <= 0 {
		maxFrames = 300
	}

	ctx, cancel := context.WithTimeout(ctx, m.defaultTimeout)
	defer cancel()

	outPattern := filepath.Join(outDir, "frame_%06d."+format)
	args := []string{"-y", "-i", videoPath}

	scaleFilter := ""
	if opts.Width > 0 {
		scaleFilter = fmt.Sprintf("scale=%d:-1", opts.Width)
	}

	var vf string
	if opts.SceneThreshold > 0 {
		vf = fmt.Sprintf("select='gt(scene\\,%0.3f)'", opts.SceneThreshold)
		if scaleFilter != "" {
			vf = vf + "," + scaleFilter
		}
	} else {
		interval := opts.IntervalSeconds
		if interval <= 0 {
			interval = 2.0
		}
		fps := 1.0 / interval
		vf = fmt.Sprintf("fps=%0.6f", fps)
		if scaleFilter != "" {
			vf = vf + "," + scaleFilter
		}
	}

	args = append(args, "-vf", vf)

	if format == "jpg" || format == "jpeg" {
		q := opts.JPEGQuality
		if q <= 0 {
			q = 3
		}
		args = append(args, "-q:v", strconv.Itoa(q))
	}

	args = append(args, outPattern)

	cmd := exec.CommandContext(ctx, m.ffmpegPath, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffmpeg keyframes failed: %w; out=%s", err, string(out))
	}

	frames, _ := globSorted(outDir, "^frame_\\d+\\.(png|jpe?g)$")
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames produced by ffmpeg; out=%s", string(out))
	}
	if len(frames) > maxFrames {
		frames = frames[:maxFrames]
	}

	return frames, nil
}

func globSorted(dir string, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if re.MatchString(strings.ToLower(e.Name())) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
