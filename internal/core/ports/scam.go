package ports

import (
	"context"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

// ScamClassifier scores a message against the pre-trained scam model.
type ScamClassifier interface {
	Classify(ctx context.Context, message string) (*domain.ScamVerdict, error)
}

// IntentParser resolves a message's intent via the external NLU service.
type IntentParser interface {
	Parse(ctx context.Context, message string) (*domain.Intent, error)
}

// ScamService defines the moderation sidecar operations.
type ScamService interface {
	Check(ctx context.Context, message string) (*domain.ScamVerdict, error)
	Intent(ctx context.Context, message string) (*domain.Intent, error)
}
