package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

type stubClassifier struct {
	calls   int
	verdict *domain.ScamVerdict
	err     error
}

func (c *stubClassifier) Classify(_ context.Context, _ string) (*domain.ScamVerdict, error) {
	c.calls++
	return c.verdict, c.err
}

type stubVerdictCache struct {
	entries map[string]*domain.ScamVerdict
	getErr  error
	putErr  error
}

func newStubVerdictCache() *stubVerdictCache {
	return &stubVerdictCache{entries: make(map[string]*domain.ScamVerdict)}
}

func (c *stubVerdictCache) Get(_ context.Context, message string) (*domain.ScamVerdict, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[message]
	return v, ok, nil
}

func (c *stubVerdictCache) Put(_ context.Context, message string, verdict *domain.ScamVerdict) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.entries[message] = verdict
	return nil
}

func TestScamService_Check_CachesVerdict(t *testing.T) {
	p := 0.93
	classifier := &stubClassifier{verdict: &domain.ScamVerdict{IsScam: true, Probability: &p}}
	cache := newStubVerdictCache()
	svc := NewScamService(classifier, nil, cache, zerolog.Nop())

	first, err := svc.Check(context.Background(), "send me an advance fee")
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !first.IsScam {
		t.Fatalf("expected scam verdict")
	}

	second, err := svc.Check(context.Background(), "send me an advance fee")
	if err != nil {
		t.Fatalf("second Check returned error: %v", err)
	}
	if classifier.calls != 1 {
		t.Fatalf("expected classifier called once, got %d", classifier.calls)
	}
	if second.IsScam != first.IsScam {
		t.Fatalf("cached verdict does not match")
	}
}

func TestScamService_Check_CacheFailureIsBestEffort(t *testing.T) {
	classifier := &stubClassifier{verdict: &domain.ScamVerdict{IsScam: false}}
	cache := newStubVerdictCache()
	cache.getErr = errors.New("redis down")
	cache.putErr = errors.New("redis down")
	svc := NewScamService(classifier, nil, cache, zerolog.Nop())

	verdict, err := svc.Check(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Check should survive cache failure, got %v", err)
	}
	if verdict.IsScam {
		t.Fatalf("unexpected verdict: %+v", verdict)
	}
	if classifier.calls != 1 {
		t.Fatalf("expected classifier fallback, got %d calls", classifier.calls)
	}
}

func TestScamService_Check_ClassifierError(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("model unavailable")}
	svc := NewScamService(classifier, nil, nil, zerolog.Nop())

	if _, err := svc.Check(context.Background(), "hello"); err == nil {
		t.Fatalf("expected classifier error to propagate")
	}
}

type stubIntentParser struct {
	intent *domain.Intent
}

func (p *stubIntentParser) Parse(_ context.Context, _ string) (*domain.Intent, error) {
	return p.intent, nil
}

func TestScamService_Intent(t *testing.T) {
	conf := 0.87
	svc := NewScamService(nil, &stubIntentParser{intent: &domain.Intent{Intent: "greet", Confidence: &conf}}, nil, zerolog.Nop())

	intent, err := svc.Intent(context.Background(), "hi there")
	if err != nil {
		t.Fatalf("Intent returned error: %v", err)
	}
	if intent.Intent != "greet" {
		t.Fatalf("unexpected intent: %+v", intent)
	}
}
