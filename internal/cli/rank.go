package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"resumematch/internal/adapter/analyzer"
	"resumematch/internal/adapter/extract"
	"resumematch/internal/adapter/fs"
	"resumematch/internal/domain"
	"resumematch/internal/usecase"
)

var rankCSV string

var rankCmd = &cobra.Command{
	Use:   "rank <dir>",
	Short: "Rank a directory of resumes against a job description",
	Long: `Discover resumes (PDF and DOCX by default) under a directory, score each
against the job description, and print the top matches ranked by score.

Examples:
  resumematch rank ./resumes -j jd.txt
  resumematch rank ./resumes -j jd.txt --csv top_matched_resumes.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().StringVar(&rankCSV, "csv", "", "export results to a CSV file (conventionally "+usecase.CSVFileName+")")
}

func runRank(cmd *cobra.Command, args []string) error {
	jd, err := jobDescription()
	if err != nil {
		return err
	}

	walker := fs.NewWalker(cfg.Discover.Includes, cfg.Discover.Excludes)
	files, err := walker.Walk(args[0])
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", args[0], err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no resumes found under %s", args[0])
	}

	docs := make([]domain.Document, 0, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(f.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Path, err)
		}
		docs = append(docs, domain.Document{
			Name: f.Name,
			Kind: extract.DetectKind(f.Name),
			Data: data,
		})
	}

	embedder, cleanup, err := newEmbedder(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	bar := progressbar.NewOptions(len(docs),
		progressbar.OptionSetDescription("Matching resumes"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

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
			OnProgress: func(done, total int) {
				bar.Add(1)
			},
		},
	)

	results, err := matcher.MatchMany(cmd.Context(), jd, docs)
	if err != nil {
		return err
	}

	fmt.Printf("Top %d of %d resumes\n\n", len(results), len(docs))
	printTable(results)

	if rankCSV != "" {
		if err := exportCSV(rankCSV, results); err != nil {
			return err
		}
		fmt.Printf("\nResults written to %s\n", rankCSV)
	}

	return nil
}

func printTable(results []domain.MatchResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tResume\tMatch Score (%)\tMissing Keywords")
	for i, r := range results {
		name := r.Resume
		if r.LowConfidence {
			name += " (!)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, name, usecase.FormatScore(r.ScorePercent), strings.Join(r.MissingKeywords, ", "))
	}
	w.Flush()
}

func exportCSV(path string, results []domain.MatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := usecase.WriteCSV(f, results); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
