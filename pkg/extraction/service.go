package extraction

import (
	"context"

	"personal-crm-be/internal/constant"

	"go.uber.org/zap"
)

// Service runs an ordered categorizer chain. Provider errors are logged and
// absorbed; Analyze always returns a usable category map because the chain
// ends in the heuristic, which cannot fail.
type Service struct {
	chain     []Categorizer
	heuristic Categorizer
	logger    *zap.Logger
}

// NewService builds the chain from the configured categorizers followed by
// the heuristic terminal.
func NewService(logger *zap.Logger, categorizers ...Categorizer) *Service {
	heuristic := NewHeuristicCategorizer()
	chain := make([]Categorizer, 0, len(categorizers)+1)
	chain = append(chain, categorizers...)
	chain = append(chain, heuristic)

	return &Service{
		chain:     chain,
		heuristic: heuristic,
		logger:    logger.Named("extraction"),
	}
}

// Analyze tries each categorizer in order and returns the first successful
// result after Others demotion.
func (s *Service) Analyze(ctx context.Context, note, contactName, history string) CategoryMap {
	for _, categorizer := range s.chain {
		result, err := categorizer.Categorize(ctx, note, contactName, history)
		if err != nil {
			s.logger.Warn("categorizer failed, trying next",
				zap.String("categorizer", categorizer.Name()),
				zap.Error(err))
			continue
		}
		return DemoteOthers(result)
	}

	// Unreachable while the heuristic terminates the chain; kept so a
	// misconfigured empty chain still degrades instead of panicking.
	result, _ := s.heuristic.Categorize(ctx, note, contactName, history)
	return DemoteOthers(result)
}

// Fallback invokes the heuristic directly, bypassing providers. Used when a
// provider returned a syntactically valid but empty map.
func (s *Service) Fallback(ctx context.Context, note, contactName string) CategoryMap {
	result, _ := s.heuristic.Categorize(ctx, note, contactName, "")
	return DemoteOthers(result)
}

// DemoteOthers removes the catch-all "Others" category whenever any other
// category is present. Applying it twice is a no-op.
func DemoteOthers(m CategoryMap) CategoryMap {
	if m == nil {
		return m
	}
	if _, hasOthers := m[constant.CategoryOthers]; !hasOthers {
		return m
	}
	if len(m) > 1 {
		delete(m, constant.CategoryOthers)
	}
	return m
}
