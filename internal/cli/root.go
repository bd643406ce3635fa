package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resumematch/config"
	"resumematch/internal/adapter/embedding"
	"resumematch/internal/logger"
	"resumematch/internal/port"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger

	jdFile string
	jdText string
)

var rootCmd = &cobra.Command{
	Use:   "resumematch",
	Short: "Match resumes against a job description",
	Long: `resumematch scores resumes against a job description by embedding both
with a pretrained model and comparing them with cosine similarity. Each resume
gets a 0-100 match score and a list of job-description keywords it is missing.

Example usage:
  resumematch match resume.pdf -j jd.txt    # Score one resume (Student mode)
  resumematch rank ./resumes -j jd.txt      # Rank a directory of resumes (HR mode)`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./resumematch.yaml)")
	rootCmd.PersistentFlags().StringVarP(&jdFile, "jd", "j", "", "file containing the job description")
	rootCmd.PersistentFlags().StringVar(&jdText, "jd-text", "", "job description as inline text")
}

// jobDescription resolves the job description from flags. An empty job
// description is rejected here so the pipeline is never invoked without input.
func jobDescription() (string, error) {
	if jdText != "" {
		return jdText, nil
	}
	if jdFile == "" {
		return "", fmt.Errorf("please provide a job description via --jd or --jd-text")
	}

	data, err := os.ReadFile(jdFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("job description file %s is empty", jdFile)
	}
	return text, nil
}

// newEmbedder builds the configured embedding provider, optionally wrapped in
// the on-disk cache. The returned cleanup releases the cache database.
func newEmbedder(ctx context.Context) (port.Embedder, func(), error) {
	e := cfg.Embedding

	var embedder port.Embedder
	var err error
	switch e.Provider {
	case "openai":
		var he *embedding.HTTPEmbedder
		he, err = embedding.NewOpenAIEmbedder(e.APIKeyEnv, e.Model)
		embedder = configureHTTP(he, e)
	case "jina":
		var he *embedding.HTTPEmbedder
		he, err = embedding.NewJinaEmbedder(e.APIKeyEnv, e.Model)
		embedder = configureHTTP(he, e)
	case "ollama":
		var he *embedding.HTTPEmbedder
		he, err = embedding.NewOllamaEmbedder(e.Model, e.BaseURL)
		embedder = configureHTTP(he, e)
	case "gemini":
		embedder, err = embedding.NewGeminiEmbedder(ctx, e.APIKeyEnv, e.Model, e.Dimension)
	case "mock":
		embedder = embedding.NewMockEmbedder(e.Dimension)
	default:
		return nil, nil, fmt.Errorf("unknown embedding provider: %q", e.Provider)
	}
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {}
	if e.Cache {
		cache, cerr := embedding.NewBoltCache(e.CachePath, embedder)
		if cerr != nil {
			return nil, nil, cerr
		}
		embedder = cache
		cleanup = func() { cache.Close() }
	}

	return embedder, cleanup, nil
}

// configureHTTP applies config overrides that make sense for the
// OpenAI-compatible providers. Dimensions come from the provider model tables.
func configureHTTP(he *embedding.HTTPEmbedder, e config.EmbeddingConfig) port.Embedder {
	if he == nil {
		return nil
	}
	he.SetBatchSize(e.BatchSize)
	return he
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Logging.Level, cfg.Logging.JSON)
}
