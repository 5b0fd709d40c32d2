package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/thinkerbell/semantic-engine/adapters"
)

// Pipeline classifies free-form text into the four content categories. A
// single instance is shared process-wide: Initialize selects the active
// classification strategy exactly once, and every later call only reads the
// resulting state, so concurrent ClassifyText calls need no coordination.
type Pipeline struct {
	configured   Encoder
	fallbackOnly bool
	threshold    float64
	logger       *slog.Logger

	fallback keywordClassifier

	// Initialization runs as a single-execution critical section; the state
	// fields below are written once inside it and read-only afterward.
	initOnce sync.Once

	mu    sync.RWMutex
	state State
	sim   *similarityClassifier
}

// NewPipeline creates a new Pipeline with the given configuration. The
// pipeline classifies by keyword fallback until Initialize has selected the
// active strategy.
func NewPipeline(cfg Config) *Pipeline {
	cfg.applyDefaults()

	return &Pipeline{
		configured:   cfg.Encoder,
		fallbackOnly: cfg.FallbackOnly,
		threshold:    cfg.Threshold,
		logger:       cfg.Logger,
	}
}

// Initialize selects the classification strategy: it constructs an embedding
// provider if none was injected, builds the anchor catalog, and on success
// activates similarity mode. Every failure along the way is logged and drops
// the pipeline into keyword fallback mode; Initialize never returns an
// error. It reports whether similarity mode is active, runs its work exactly
// once, and is safe for concurrent callers; repeat calls only re-report the
// outcome.
func (p *Pipeline) Initialize(ctx context.Context) bool {
	p.initOnce.Do(func() { p.initialize(ctx) })

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state == StateSimilarity
}

func (p *Pipeline) initialize(ctx context.Context) {
	if p.fallbackOnly {
		p.logger.Info("pipeline ready", "state", StateFallback,
			"reason", "no embedding provider configured")
		p.setState(StateFallback, nil)
		return
	}

	enc := p.configured
	if enc == nil {
		built, err := adapters.NewVoyageEncoder(nil)
		if err != nil {
			ierr := &InitializationError{Stage: "encoder_setup", Err: err}
			p.logger.Warn("similarity mode unavailable, falling back to keywords", "error", ierr)
			p.setState(StateFallback, nil)
			return
		}
		enc = built
	}

	catalog, err := BuildAnchorCatalog(ctx, enc)
	if err != nil {
		p.logger.Warn("similarity mode unavailable, falling back to keywords", "error", err)
		p.setState(StateFallback, nil)
		return
	}

	p.setState(StateSimilarity, &similarityClassifier{
		enc:     enc,
		catalog: catalog,
		logger:  p.logger,
	})
	p.logger.Info("pipeline ready", "state", StateSimilarity, "model", enc.ModelName())
}

func (p *Pipeline) setState(s State, sim *similarityClassifier) {
	p.mu.Lock()
	p.state = s
	p.sim = sim
	p.mu.Unlock()
}

// ClassifyText segments text into sentences, classifies each with the active
// strategy, and aggregates the batch. The returned routed content carries
// all four categories, each list sorted by descending confidence with ties
// keeping input order. Classification-quality problems never fail the call;
// only a malformed threshold or a cancelled context does.
func (p *Pipeline) ClassifyText(ctx context.Context, text string, threshold float64) (*Result, error) {
	if threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidThreshold, threshold)
	}

	start := time.Now()
	sim := p.activeSimilarity()

	var classified []ClassifiedSentence
	for sentence := range Segment(text) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("classification aborted: %w", err)
		}

		var s ClassifiedSentence
		if sim != nil {
			cat, conf := sim.Classify(ctx, sentence, threshold)
			s = ClassifiedSentence{Text: sentence, Category: cat, Confidence: conf, Method: MethodSimilarity}
		} else {
			cat, conf := p.fallback.Classify(sentence)
			s = ClassifiedSentence{Text: sentence, Category: cat, Confidence: conf, Method: MethodKeyword}
		}
		classified = append(classified, s)
	}

	routed := make(map[Category][]ClassifiedSentence, len(Categories))
	for _, cat := range Categories {
		routed[cat] = []ClassifiedSentence{}
	}
	for _, s := range classified {
		routed[s.Category] = append(routed[s.Category], s)
	}
	for _, cat := range Categories {
		list := routed[cat]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Confidence > list[j].Confidence
		})
	}

	return &Result{
		RoutedContent:    routed,
		Analytics:        Aggregate(classified),
		ProcessingTimeMS: float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}

// ClassifySentence classifies a single sentence with the active strategy.
// It is the single-sentence variant behind explanation endpoints.
func (p *Pipeline) ClassifySentence(ctx context.Context, sentence string, threshold float64) (Category, float64, error) {
	if threshold <= 0 || threshold > 1 {
		return "", 0, fmt.Errorf("%w: got %g", ErrInvalidThreshold, threshold)
	}

	if sim := p.activeSimilarity(); sim != nil {
		cat, conf := sim.Classify(ctx, sentence, threshold)
		return cat, conf, nil
	}
	cat, conf := p.fallback.Classify(sentence)
	return cat, conf, nil
}

// activeSimilarity returns the similarity classifier when it is the active
// strategy, else nil. Before Initialize completes this is always nil, so an
// uninitialized pipeline classifies by keywords.
func (p *Pipeline) activeSimilarity() *similarityClassifier {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.state == StateSimilarity {
		return p.sim
	}
	return nil
}

// State returns the pipeline lifecycle state.
func (p *Pipeline) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Status describes the pipeline for health and model endpoints.
func (p *Pipeline) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st := Status{SimilarityModeActive: p.state == StateSimilarity}
	if p.sim != nil {
		st.ModelID = p.sim.enc.ModelName()
	}
	return st
}

// DefaultThreshold returns the configured confidence floor, for callers that
// let requests omit one.
func (p *Pipeline) DefaultThreshold() float64 {
	return p.threshold
}
