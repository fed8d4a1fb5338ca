package reel

import (
	"context"
	"errors"
	"fmt"

	"slot_reel/internal/model"
	"slot_reel/internal/repository"
	"slot_reel/internal/service"

	"go.uber.org/zap"
)

// Sequence отдаёт ленту барабана
func (s *serv) Sequence(ctx context.Context) (*model.ReelSequence, error) {
	name := s.cfg.SequenceName()

	symbols, err := s.seqRepo.GetSequence(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrSequenceNotFound
		}
		return nil, fmt.Errorf("get sequence %q: %w", name, err)
	}

	return &model.ReelSequence{Name: name, Symbols: symbols}, nil
}

// EnsureSequence записывает ленту из конфига, если в БД её нет или она отличается
func (s *serv) EnsureSequence(ctx context.Context) error {
	name := s.cfg.SequenceName()
	want := s.cfg.Sequence()

	stored, err := s.seqRepo.GetSequence(ctx, name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("get sequence %q: %w", name, err)
	}
	if err == nil && equalSymbols(stored, want) {
		return nil
	}

	if err := s.seqRepo.SaveSequence(ctx, model.ReelSequence{Name: name, Symbols: want}); err != nil {
		return fmt.Errorf("save sequence %q: %w", name, err)
	}
	s.log.Info("reel sequence stored", zap.String("name", name), zap.Int("length", len(want)))

	return nil
}

func equalSymbols(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
