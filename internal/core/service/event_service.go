package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/airbean/order-system/internal/core/domain"
	"github.com/airbean/order-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for audit events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, action, subjectID string, ts time.Time) (bool, error)
	Mark(ctx context.Context, action, subjectID string, ts time.Time) error
}

type eventService struct {
	repo  ports.EventRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewEventService returns the catalog audit EventService implementation.
func NewEventService(repo ports.EventRepository, dedup DedupChecker, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists one catalog audit event.
func (s *eventService) Process(ctx context.Context, in ports.CatalogEventInput) error {
	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.Action, in.SubjectID, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("subject", in.SubjectID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("subject", in.SubjectID).Str("action", in.Action).Msg("duplicate event skipped")
		return nil
	}

	// 2. Mark before writing so a retried write cannot double-record.
	if markErr := s.dedup.Mark(ctx, in.Action, in.SubjectID, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("subject", in.SubjectID).Msg("failed to set dedup key")
	}

	event := &domain.CatalogEvent{
		ID:        uuid.NewString(),
		Action:    in.Action,
		SubjectID: in.SubjectID,
		Actor:     in.Actor,
		Timestamp: in.Timestamp,
	}
	if err := s.repo.InsertEvent(ctx, event); err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	s.log.Info().
		Str("action", in.Action).
		Str("subject", in.SubjectID).
		Str("actor", in.Actor).
		Msg("catalog event recorded")

	return nil
}
