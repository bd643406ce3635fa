package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"resumematch/internal/adapter/analyzer"
	"resumematch/internal/adapter/extract"
	"resumematch/internal/adapter/fs"
	"resumematch/internal/domain"
	"resumematch/internal/usecase"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume>",
	Short: "Score one resume against a job description",
	Long: `Score a single resume (PDF or DOCX) against a job description and report
the match percentage plus the job-description keywords the resume is missing.

Examples:
  resumematch match resume.pdf -j jd.txt
  resumematch match cv.docx --jd-text "Senior Go engineer, Kubernetes, AWS"`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	jd, err := jobDescription()
	if err != nil {
		return err
	}

	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}

	embedder, cleanup, err := newEmbedder(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	matcher := usecase.NewMatcher(
		extract.NewDocumentExtractor(),
		embedder,
		analyzer.NewNormalizer(),
		log,
		usecase.Options{
			TopK:         cfg.Match.TopK,
			MaxKeywords:  cfg.Match.MaxKeywords,
			Concurrency:  cfg.Match.Concurrency,
			MinTextChars: cfg.Match.MinTextChars,
		},
	)

	result, err := matcher.MatchOne(cmd.Context(), jd, doc)
	if err != nil {
		return err
	}

	fmt.Printf("Match Score: %s%%\n", usecase.FormatScore(result.ScorePercent))
	if len(result.MissingKeywords) > 0 {
		fmt.Printf("Missing Keywords: %s\n", strings.Join(result.MissingKeywords, ", "))
	} else {
		fmt.Println("Missing Keywords: none")
	}
	if result.LowConfidence {
		fmt.Println("Note: very little text could be extracted from this resume; the score may not be meaningful.")
	}

	return nil
}

func loadDocument(path string) (domain.Document, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to read resume: %w", err)
	}
	return domain.Document{
		Name: filepath.Base(path),
		Kind: extract.DetectKind(path),
		Data: data,
	}, nil
}
