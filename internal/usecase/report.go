package usecase

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"resumematch/internal/domain"
)

// CSVFileName is the conventional name for an exported ranking.
const CSVFileName = "top_matched_resumes.csv"

var csvHeader = []string{"Resume", "Match Score (%)", "Missing Keywords"}

// WriteCSV writes ranked results as UTF-8 CSV with the header row
// "Resume,Match Score (%),Missing Keywords".
func WriteCSV(w io.Writer, results []domain.MatchResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Resume,
			FormatScore(r.ScorePercent),
			strings.Join(r.MissingKeywords, ", "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatScore renders a score percentage with its two contractual decimals.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}
