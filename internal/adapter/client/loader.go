package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/domain/service"
	"github.com/ressKim-io/EvoGuard/sentiment-cli/internal/infrastructure/config"
)

// Loader errors
var (
	ErrUnknownProvider = errors.New("unknown model provider")
	ErrMissingToken    = errors.New("huggingface provider needs an API token: set HF_TOKEN or SENTIMENT_MODEL_API_TOKEN")
)

// readier is implemented by backends that need a warm-up before use
type readier interface {
	Ready(ctx context.Context) error
}

// Model is a loaded classifier ready for inference
type Model struct {
	Classifier service.Classifier
	Provider   string
	Name       string
	close      func() error
}

// Close releases backend resources, if any
func (m *Model) Close() error {
	if m.close == nil {
		return nil
	}
	return m.close()
}

// LoadClassifier builds the configured backend and waits until it can serve
// predictions. Progress is printed to out.
func LoadClassifier(ctx context.Context, cfg *config.ModelConfig, out io.Writer, log *zap.Logger) (*Model, error) {
	fmt.Fprintln(out, "Loading pretrained model...")

	model, err := newModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Model backend created",
		zap.String("provider", model.Provider),
		zap.String("model", model.Name),
	)

	if r, ok := model.Classifier.(readier); ok {
		if err := r.Ready(ctx); err != nil {
			_ = model.Close()
			return nil, err
		}
		log.Debug("Model warm-up completed")
	}

	fmt.Fprintln(out, "Model loaded successfully!")
	fmt.Fprintln(out)
	return model, nil
}

func newModel(ctx context.Context, cfg *config.ModelConfig) (*Model, error) {
	switch cfg.Provider {
	case config.ProviderHuggingFace:
		if cfg.APIToken == "" {
			return nil, ErrMissingToken
		}
		name := valueOr(cfg.Name, DefaultHFModel)
		hf := NewHFClient(valueOr(cfg.BaseURL, DefaultHFBaseURL), name, cfg.APIToken, cfg.Timeout, cfg.WaitForModel)
		return &Model{Classifier: NewHFClassifier(hf), Provider: cfg.Provider, Name: name}, nil

	case config.ProviderGCP:
		lc, err := NewLanguageClassifier(ctx, cfg.Credentials)
		if err != nil {
			return nil, err
		}
		return &Model{Classifier: lc, Provider: cfg.Provider, Name: "analyzeSentiment", close: lc.Close}, nil

	case config.ProviderOpenAI:
		name := valueOr(cfg.Name, openai.GPT4oMini)
		return &Model{
			Classifier: NewOpenAIClassifier(cfg.APIToken, cfg.BaseURL, name),
			Provider:   cfg.Provider,
			Name:       name,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
