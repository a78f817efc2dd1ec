package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Client talks to an Ollama server over its HTTP API.
type Client struct {
	host       string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(host, model string, timeout time.Duration, log *zap.Logger) *Client {
	if host == "" {
		host = "http://localhost:11434"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		host:  host,
		model: model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) Host() string {
	return c.host
}

func (c *Client) Model() string {
	return c.model
}

type tagsResponse struct {
	Models []Model `json:"models"`
}

// Model describes one entry from /api/tags.
type Model struct {
	Name string `json:"name"`
}

// ListModels returns the models the server has pulled.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.host+"/api/tags", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot connect to Ollama at %s", c.host)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, errors.Wrap(err, "failed to decode model list")
	}

	c.log.Debug("listed models",
		zap.Strings("names", lo.Map(tags.Models, func(m Model, _ int) string { return m.Name })))

	return tags.Models, nil
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Options are the sampling parameters for one generation call.
type Options struct {
	Temperature float64
	TopP        float64
	NumPredict  int
}

// Generate runs a single non-streaming completion and returns the raw text.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			NumPredict:  opts.NumPredict,
		},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "ollama request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Debug("generate failed", zap.Int("status", resp.StatusCode), zap.ByteString("body", detail))
		return "", &StatusError{Code: resp.StatusCode}
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", errors.Wrap(err, "failed to decode response")
	}

	c.log.Debug("generate complete",
		zap.String("model", c.model),
		zap.Int("response_length", len(genResp.Response)),
		zap.Duration("elapsed", time.Since(start)))

	if genResp.Response == "" {
		return "", ErrEmptyResponse
	}

	return genResp.Response, nil
}

// HasModel reports whether name is present in models, ignoring a trailing
// ":tag" suffix on either side, so "llama3.2" matches "llama3.2:latest".
func HasModel(models []Model, name string) bool {
	want := baseName(name)
	return lo.SomeBy(models, func(m Model) bool {
		return baseName(m.Name) == want
	})
}

func baseName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return name[:i]
		}
	}
	return name
}
