package jokes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/sant0-9/quip/internal/config"
	"github.com/sant0-9/quip/internal/llm"
)

// Backend is the slice of the Ollama client the generator needs.
type Backend interface {
	Generate(ctx context.Context, prompt string, opts llm.Options) (string, error)
	ListModels(ctx context.Context) ([]llm.Model, error)
}

// Generator turns a context string into a list of jokes via the backend.
// It is stateless between calls; concurrent calls just issue independent
// requests.
type Generator struct {
	backend Backend
	model   string
	opts    llm.Options
	timeout time.Duration
	min     int
	max     int
}

func NewGenerator(backend Backend, cfg *config.Config) *Generator {
	return &Generator{
		backend: backend,
		model:   cfg.Model,
		opts: llm.Options{
			Temperature: cfg.Generation.Temperature,
			TopP:        cfg.Generation.TopP,
			NumPredict:  cfg.Generation.NumPredict,
		},
		timeout: cfg.Timeout(),
		min:     cfg.Jokes.Min,
		max:     cfg.Jokes.Max,
	}
}

// CheckAvailability verifies the server is up and the configured model is
// pulled. It is deliberately separate from construction so the caller can
// retry it (reconnect) without rebuilding anything.
func (g *Generator) CheckAvailability(ctx context.Context) error {
	models, err := g.backend.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("cannot reach Ollama (start it with: ollama serve): %w", err)
	}

	if !llm.HasModel(models, g.model) {
		names := lo.Map(models, func(m llm.Model, _ int) string { return m.Name })
		available := "none"
		if len(names) > 0 {
			if len(names) > 5 {
				names = names[:5]
			}
			available = strings.Join(names, ", ")
		}
		return fmt.Errorf("model %q not found (pull it with: ollama pull %s); available: %s",
			g.model, g.model, available)
	}

	return nil
}

// Generate runs one full generation call. It never panics and never returns
// an error value: every outcome, including unexpected ones, is folded into
// the Result.
func (g *Generator) Generate(ctx context.Context, req Request) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Sprintf("unexpected error: %v", r))
		}
	}()

	topic := strings.TrimSpace(req.Context)
	if topic == "" {
		return failure("context cannot be empty")
	}

	count := clamp(req.Count, g.min, g.max)
	lang := NormalizeLanguage(req.Language)
	tone := NormalizeTone(req.Tone)

	prompt := Build(topic, count, lang, tone)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.backend.Generate(callCtx, prompt, g.opts)
	if err != nil {
		return failure(describeBackendError(err))
	}
	if raw == "" {
		return failure("empty response from Ollama")
	}

	parsed := ParseJokes(raw)
	if len(parsed) > count {
		parsed = parsed[:count]
	}

	return Result{
		Success:     true,
		Jokes:       parsed,
		RawResponse: raw,
	}
}

func describeBackendError(err error) string {
	switch {
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty response from Ollama"
	case llm.IsTimeout(err):
		return "request timed out; try fewer jokes or a simpler context"
	case llm.IsUnreachable(err):
		return "lost connection to Ollama; is it still running?"
	}
	if serr, ok := llm.IsStatus(err); ok {
		return fmt.Sprintf("Ollama error: status %d", serr.Code)
	}
	return err.Error()
}

func failure(msg string) Result {
	return Result{
		Success: false,
		Jokes:   []string{},
		Error:   msg,
	}
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
