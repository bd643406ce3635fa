package usecase

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"resumematch/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	results := []domain.MatchResult{
		{Resume: "alice.pdf", ScorePercent: 91.5, MissingKeywords: []string{"terraform", "aws"}},
		{Resume: "bob.docx", ScorePercent: 70, MissingKeywords: nil},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("exported CSV does not parse: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "Resume,Match Score (%),Missing Keywords" {
		t.Errorf("unexpected header: %q", header)
	}

	if records[1][0] != "alice.pdf" || records[1][1] != "91.50" || records[1][2] != "terraform, aws" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][1] != "70.00" || records[2][2] != "" {
		t.Errorf("unexpected second row: %v", records[2])
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{100, "100.00"},
		{33.33, "33.33"},
		{0, "0.00"},
		{87.5, "87.50"},
	}

	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.expected {
			t.Errorf("FormatScore(%v) = %q, expected %q", tc.score, got, tc.expected)
		}
	}
}
