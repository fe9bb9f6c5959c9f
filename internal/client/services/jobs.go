package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snaphire/internal/client/models"
	"github.com/dmitrijs2005/snaphire/internal/client/repositories"
	"github.com/dmitrijs2005/snaphire/internal/common"
	"github.com/dmitrijs2005/snaphire/internal/keys"
	"github.com/dmitrijs2005/snaphire/internal/logging"
)

// JobService appends and lists job postings, one store entry per
// profession.
type JobService interface {
	// Post appends listing to the entry for its profession.
	Post(ctx context.Context, listing models.Listing) error
	// Browse returns every stored line for profession, in insertion order.
	// An unknown profession yields an empty slice.
	Browse(ctx context.Context, profession string) ([]string, error)
}

type jobService struct {
	store repositories.Store
	keys  keys.Normalizer
	log   logging.Logger
}

func NewJobService(store repositories.Store, norm keys.Normalizer, log logging.Logger) JobService {
	return &jobService{store: store, keys: norm, log: log}
}

func (s *jobService) Post(ctx context.Context, listing models.Listing) error {
	if listing.Profession == "" {
		return common.ErrEmptyProfession
	}

	key := s.keys.Key(listing.Profession)
	if err := s.store.AppendBlock(ctx, key, listing.Lines()); err != nil {
		s.log.Error(ctx, "append listing", "profession", key, "error", err)
		return fmt.Errorf("post job for %q: %w", key, err)
	}

	s.log.Info(ctx, "job posted", "profession", key)
	return nil
}

func (s *jobService) Browse(ctx context.Context, profession string) ([]string, error) {
	if profession == "" {
		return []string{}, nil
	}

	key := s.keys.Key(profession)
	lines, err := s.store.ReadAllLines(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("browse jobs for %q: %w", key, err)
	}

	s.log.Debug(ctx, "jobs browsed", "profession", key, "lines", len(lines))
	return lines, nil
}
