package services

import (
	"strings"

	"go.uber.org/zap"
)

// FeedbackStore is the persistence surface the feedback service depends on.
type FeedbackStore interface {
	Create(text string) error
}

type FeedbackService struct {
	store FeedbackStore
}

func NewFeedbackService(store FeedbackStore) *FeedbackService {
	return &FeedbackService{store: store}
}

// Submit stores customer feedback. Persistence is fire-and-forget: a store
// failure is logged and never surfaced to the caller.
func (s *FeedbackService) Submit(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ValidationError("feedback text is required")
	}

	if err := s.store.Create(text); err != nil {
		zap.L().Error("could not save feedback", zap.Error(err))
	}
	return nil
}
