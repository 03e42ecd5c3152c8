package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/yungbote/roadquiz-backend/internal/pkg/ctxutil"
	"github.com/yungbote/roadquiz-backend/internal/pkg/logger"
)

// Client is a minimal Weaviate REST client used to index generated quizzes
// for semantic search.
type Client interface {
	Ready(ctx context.Context) (bool, error)
	EnsureClass(ctx context.Context, class ClassDefinition) error
	CreateObject(ctx context.Context, obj Object) error
	NearText(ctx context.Context, className string, query string, limit int, fields []string) ([]map[string]any, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type client struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = strings.TrimSpace(os.Getenv("WEAVIATE_URL"))
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("missing WEAVIATE_URL")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if strings.TrimSpace(cfg.APIKey) == "" {
		cfg.APIKey = strings.TrimSpace(os.Getenv("WEAVIATE_API_KEY"))
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &client{
		log:  log.With("client", "WeaviateClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// -------------------- Schema --------------------

type ClassProperty struct {
	Name     string   `json:"name"`
	DataType []string `json:"dataType"`
}

type ClassDefinition struct {
	Class      string          `json:"class"`
	Vectorizer string          `json:"vectorizer,omitempty"`
	Properties []ClassProperty `json:"properties,omitempty"`
}

func (c *client) Ready(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), "GET", c.cfg.BaseURL+"/v1/.well-known/ready", nil)
	if err != nil {
		return false, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

func (c *client) EnsureClass(ctx context.Context, class ClassDefinition) error {
	if strings.TrimSpace(class.Class) == "" {
		return fmt.Errorf("class name required")
	}

	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), "GET", c.cfg.BaseURL+"/v1/schema/"+class.Class, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	_, err = doJSON[map[string]any](c, ctx, "POST", c.cfg.BaseURL+"/v1/schema", class)
	return err
}

// -------------------- Objects --------------------

type Object struct {
	ID         string         `json:"id,omitempty"`
	Class      string         `json:"class"`
	Properties map[string]any `json:"properties"`
}

func (c *client) CreateObject(ctx context.Context, obj Object) error {
	if strings.TrimSpace(obj.Class) == "" {
		return fmt.Errorf("object class required")
	}
	_, err := doJSON[map[string]any](c, ctx, "POST", c.cfg.BaseURL+"/v1/objects", obj)
	return err
}

// -------------------- GraphQL search --------------------

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLResponse struct {
	Data   map[string]map[string][]map[string]any `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *client) NearText(ctx context.Context, className string, query string, limit int, fields []string) ([]map[string]any, error) {
	className = strings.TrimSpace(className)
	if className == "" {
		return nil, fmt.Errorf("className required")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query required")
	}
	if limit <= 0 {
		limit = 10
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("fields required")
	}

	escaped, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	gql := fmt.Sprintf(
		`{ Get { %s(nearText: {concepts: [%s]}, limit: %d) { %s } } }`,
		className, string(escaped), limit, strings.Join(fields, " "),
	)

	resp, err := doJSON[graphQLResponse](c, ctx, "POST", c.cfg.BaseURL+"/v1/graphql", graphQLRequest{Query: gql})
	if err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("weaviate graphql: %s", resp.Errors[0].Message)
	}

	get, ok := resp.Data["Get"]
	if !ok {
		return []map[string]any{}, nil
	}
	return get[className], nil
}

// -------------------- helpers --------------------

func (c *client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}

func doJSON[T any](c *client, ctx context.Context, method, url string, body any) (*T, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctxutil.Default(ctx), method, url, &buf)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("weaviate http %d: %s", resp.StatusCode, string(raw))
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("weaviate decode error: %w; raw=%s", err, string(raw))
	}
	return &out, nil
}
