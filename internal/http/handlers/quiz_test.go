package handlers

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

type fakeBucket struct {
	uploadedKeys []string
	uploadedData []string
	uploadErr    error
}

func (f *fakeBucket) UploadFile(ctx context.Context, key string, file io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploadedKeys = append(f.uploadedKeys, key)
	f.uploadedData = append(f.uploadedData, string(data))
	return "gs://test-bucket/" + key, nil
}

func (f *fakeBucket) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func newQuizHandlerForTest(t *testing.T, bucket *fakeBucket) *QuizHandler {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewQuizHandler(log, nil, nil, bucket, t.TempDir())
}

func TestArchiveVideoUploadsAndReturnsPublicURL(t *testing.T) {
	bucket := &fakeBucket{}
	qh := newQuizHandlerForTest(t, bucket)

	videoPath := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(videoPath, []byte("video-bytes"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}

	url := qh.archiveVideo(context.Background(), videoPath)

	if len(bucket.uploadedKeys) != 1 {
		t.Fatalf("expected one upload, got %d", len(bucket.uploadedKeys))
	}
	if want := "videos/clip.mp4"; bucket.uploadedKeys[0] != want {
		t.Fatalf("expected key %q, got %q", want, bucket.uploadedKeys[0])
	}
	if bucket.uploadedData[0] != "video-bytes" {
		t.Fatalf("uploaded bytes do not match source file")
	}
	if want := "https://cdn.example.com/videos/clip.mp4"; url != want {
		t.Fatalf("expected url %q, got %q", want, url)
	}
}

func TestArchiveVideoWithoutBucketIsNoop(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	qh := NewQuizHandler(log, nil, nil, nil, t.TempDir())

	if url := qh.archiveVideo(context.Background(), "does-not-exist.mp4"); url != "" {
		t.Fatalf("expected empty url without a bucket, got %q", url)
	}
}

func TestArchiveVideoUploadFailureReturnsEmptyURL(t *testing.T) {
	bucket := &fakeBucket{uploadErr: io.ErrUnexpectedEOF}
	qh := newQuizHandlerForTest(t, bucket)

	videoPath := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(videoPath, []byte("video-bytes"), 0o644); err != nil {
		t.Fatalf("write video: %v", err)
	}

	if url := qh.archiveVideo(context.Background(), videoPath); url != "" {
		t.Fatalf("expected empty url on upload failure, got %q", url)
	}
}
