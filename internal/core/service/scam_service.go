package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
	"github.com/freelancehub/marketplace-api/internal/core/ports"
)

// VerdictCache abstracts the scam-verdict cache (Redis).
type VerdictCache interface {
	Get(ctx context.Context, message string) (*domain.ScamVerdict, bool, error)
	Put(ctx context.Context, message string, verdict *domain.ScamVerdict) error
}

// ScamService wraps the scam classifier and the intent parser. Classifier
// verdicts are cached by message hash; the cache is best-effort and never
// fails a check.
type ScamService struct {
	classifier ports.ScamClassifier
	intents    ports.IntentParser
	cache      VerdictCache
	log        zerolog.Logger
}

func NewScamService(classifier ports.ScamClassifier, intents ports.IntentParser, cache VerdictCache, log zerolog.Logger) *ScamService {
	return &ScamService{classifier: classifier, intents: intents, cache: cache, log: log}
}

func (s *ScamService) Check(ctx context.Context, message string) (*domain.ScamVerdict, error) {
	if s.cache != nil {
		verdict, hit, err := s.cache.Get(ctx, message)
		if err != nil {
			s.log.Warn().Err(err).Msg("verdict cache read failed, classifying anyway")
		} else if hit {
			return verdict, nil
		}
	}

	verdict, err := s.classifier.Classify(ctx, message)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, message, verdict); err != nil {
			s.log.Warn().Err(err).Msg("verdict cache write failed")
		}
	}
	return verdict, nil
}

func (s *ScamService) Intent(ctx context.Context, message string) (*domain.Intent, error) {
	return s.intents.Parse(ctx, message)
}
