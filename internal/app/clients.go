package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yungbote/roadquiz-backend/internal/clients/gcp"
	"github.com/yungbote/roadquiz-backend/internal/clients/openai"
	"github.com/yungbote/roadquiz-backend/internal/clients/redis"
	"github.com/yungbote/roadquiz-backend/internal/clients/weaviate"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
	"github.com/yungbote/roadquiz-backend/internal/platform/localmedia"
)

type Clients struct {
	OpenaiClient openai.Client
	GcpVision    gcp.Vision
	GcpBucket    gcp.BucketService
	Weaviate     weaviate.Client
	RedisCache   redis.Cache
	MediaTools   localmedia.Tools
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Openai (required: quiz synthesis depends on it)
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	}

	// Gcp Vision (optional: scene analysis degrades to the empty set)
	var vision gcp.Vision
	if strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")) != "" ||
		strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON")) != "" {
		v, vErr := gcp.NewVision(log)
		if vErr != nil {
			return Clients{}, fmt.Errorf("init vision client: %w", vErr)
		}
		vision = v
	} else {
		log.Warn("GOOGLE_APPLICATION_CREDENTIALS not set, scene analysis disabled")
	}

	// Gcs (optional: source videos archived when a bucket is configured)
	var bucket gcp.BucketService
	if strings.TrimSpace(os.Getenv("VIDEO_GCS_BUCKET_NAME")) != "" {
		b, bErr := gcp.NewBucketService(log)
		if bErr != nil {
			if vision != nil {
				_ = vision.Close()
			}
			return Clients{}, fmt.Errorf("init bucket client: %w", bErr)
		}
		bucket = b
	}

	// Weaviate (optional: search endpoints report 503 when absent)
	var vector weaviate.Client
	if strings.TrimSpace(os.Getenv("WEAVIATE_URL")) != "" {
		w, wErr := weaviate.New(log, weaviate.Config{})
		if wErr != nil {
			if vision != nil {
				_ = vision.Close()
			}
			return Clients{}, fmt.Errorf("init weaviate client: %w", wErr)
		}
		vector = w
	}

	// Redis (optional: progress responses go uncached without it)
	var cache redis.Cache
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		c, cErr := redis.NewCache(log)
		if cErr != nil {
			if vision != nil {
				_ = vision.Close()
			}
			return Clients{}, fmt.Errorf("init redis cache: %w", cErr)
		}
		cache = c
	}

	media := localmedia.New(log)
	if err := media.AssertReady(context.Background()); err != nil {
		log.Warn("ffmpeg not available, scene analysis will yield no road elements", "error", err)
	}

	return Clients{
		OpenaiClient: openaiClient,
		GcpVision:    vision,
		GcpBucket:    bucket,
		Weaviate:     vector,
		RedisCache:   cache,
		MediaTools:   media,
	}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.RedisCache != nil {
		_ = c.RedisCache.Close()
	}
	if c.GcpVision != nil {
		_ = c.GcpVision.Close()
	}
}
