package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"resumematch/internal/adapter/analyzer"
	"resumematch/internal/domain"
	"resumematch/internal/port"
)

// Options tunes a Matcher. Zero values fall back to the defaults below.
type Options struct {
	// TopK bounds how many results MatchMany returns.
	TopK int
	// MaxKeywords bounds the missing-keyword feedback per resume.
	MaxKeywords int
	// Concurrency bounds how many resumes are processed at once in MatchMany.
	Concurrency int
	// MinTextChars is the cleaned-text length under which a result is flagged
	// low confidence.
	MinTextChars int
	// OnProgress, if set, is called after each resume in a batch finishes.
	OnProgress func(done, total int)
}

const (
	defaultTopK         = 10
	defaultMaxKeywords  = 10
	defaultConcurrency  = 4
	defaultMinTextChars = 100
)

// Matcher scores resumes against a job description. The embedder is an
// injected dependency so the pipeline runs the same against a live model or a
// test double.
type Matcher struct {
	extractor  port.Extractor
	embedder   port.Embedder
	normalizer *analyzer.Normalizer
	logger     *zap.Logger
	opts       Options
}

func NewMatcher(extractor port.Extractor, embedder port.Embedder, normalizer *analyzer.Normalizer, logger *zap.Logger, opts Options) *Matcher {
	if opts.TopK <= 0 {
		opts.TopK = defaultTopK
	}
	if opts.MaxKeywords <= 0 {
		opts.MaxKeywords = defaultMaxKeywords
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	if opts.MinTextChars <= 0 {
		opts.MinTextChars = defaultMinTextChars
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		extractor:  extractor,
		embedder:   embedder,
		normalizer: normalizer,
		logger:     logger,
		opts:       opts,
	}
}

// MatchOne scores a single resume against the job description.
func (m *Matcher) MatchOne(ctx context.Context, jobDescription string, doc domain.Document) (domain.MatchResult, error) {
	cleanJD := m.normalizer.Clean(jobDescription)

	jdVecs, err := m.embedder.Embed(ctx, []string{cleanJD})
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("embed job description: %w", err)
	}

	return m.matchAgainst(ctx, cleanJD, jdVecs[0], doc)
}

// MatchMany scores every document against the job description and returns up
// to TopK results sorted by score descending. The sort is stable: resumes with
// equal scores keep their input order. The job description is normalized and
// embedded exactly once for the whole batch.
//
// A resume that cannot be extracted or embedded does not abort the batch; it
// stays in the ranking as a zero-score, low-confidence row carrying the error
// text, so callers can tell "no content" from "format not supported".
func (m *Matcher) MatchMany(ctx context.Context, jobDescription string, docs []domain.Document) ([]domain.MatchResult, error) {
	cleanJD := m.normalizer.Clean(jobDescription)

	jdVecs, err := m.embedder.Embed(ctx, []string{cleanJD})
	if err != nil {
		return nil, fmt.Errorf("embed job description: %w", err)
	}
	jdVec := jdVecs[0]

	results := make([]domain.MatchResult, len(docs))

	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.Concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			res, err := m.matchAgainst(gctx, cleanJD, jdVec, doc)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				m.logger.Warn("resume not scored",
					zap.String("resume", doc.Name),
					zap.Error(err))
				res = domain.MatchResult{
					Resume:        doc.Name,
					LowConfidence: true,
					Note:          err.Error(),
				}
			}
			results[i] = res

			if m.opts.OnProgress != nil {
				mu.Lock()
				done++
				m.opts.OnProgress(done, len(docs))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ScorePercent > results[j].ScorePercent
	})

	if len(results) > m.opts.TopK {
		results = results[:m.opts.TopK]
	}
	return results, nil
}

// matchAgainst runs extraction, normalization, embedding, scoring and keyword
// feedback for one resume against an already-embedded job description.
func (m *Matcher) matchAgainst(ctx context.Context, cleanJD string, jdVec []float32, doc domain.Document) (domain.MatchResult, error) {
	result := domain.MatchResult{Resume: doc.Name}

	text, err := m.extractor.Extract(doc)
	if err != nil {
		return result, fmt.Errorf("extract %s: %w", doc.Name, err)
	}

	cleanResume := m.normalizer.Clean(text)
	if len(cleanResume) < m.opts.MinTextChars {
		result.LowConfidence = true
		m.logger.Warn("little extractable text",
			zap.String("resume", doc.Name),
			zap.Int("chars", len(cleanResume)))
	}

	vecs, err := m.embedder.Embed(ctx, []string{cleanResume})
	if err != nil {
		return result, fmt.Errorf("embed %s: %w", doc.Name, err)
	}

	score, err := Score(vecs[0], jdVec)
	if err != nil {
		return result, fmt.Errorf("score %s: %w", doc.Name, err)
	}

	result.ScorePercent = score
	result.MissingKeywords = MissingKeywords(cleanResume, cleanJD, m.opts.MaxKeywords)
	return result, nil
}
