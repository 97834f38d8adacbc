package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/alexanderramin/plans/internal/store"
	"github.com/google/uuid"
)

type goalService struct {
	store *store.Store
}

func NewGoalService(st *store.Store) GoalService {
	return &goalService{store: st}
}

func (s *goalService) List(horizonID string) []*domain.Goal {
	return s.store.Document().GoalsByHorizon[horizonID]
}

func (s *goalService) Get(horizonID, id string) (*domain.Goal, error) {
	for _, g := range s.store.Document().GoalsByHorizon[horizonID] {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, fmt.Errorf("goal %q: %w", id, ErrNotFound)
}

func (s *goalService) Add(ctx context.Context, horizonID, title, desc string, targetDate *time.Time) (*domain.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !domain.ValidHorizonID(horizonID) {
		return nil, fmt.Errorf("horizon %q: %w", horizonID, ErrInvalidHorizon)
	}

	now := s.store.Now()
	goal := &domain.Goal{
		ID:         uuid.New().String(),
		Title:      title,
		Desc:       strings.TrimSpace(desc),
		TargetDate: targetDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	doc := s.store.Document()
	doc.GoalsByHorizon[horizonID] = append([]*domain.Goal{goal}, doc.GoalsByHorizon[horizonID]...)
	if err := s.store.Save(ctx); err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) Edit(ctx context.Context, horizonID, id, title, desc string, targetDate *time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	goal, err := s.Get(horizonID, id)
	if err != nil {
		return err
	}
	goal.Title = title
	goal.Desc = strings.TrimSpace(desc)
	goal.TargetDate = targetDate
	goal.UpdatedAt = s.store.Now()
	return s.store.Save(ctx)
}

func (s *goalService) ToggleDone(ctx context.Context, horizonID, id string) error {
	goal, err := s.Get(horizonID, id)
	if err != nil {
		return err
	}
	goal.Done = !goal.Done
	goal.UpdatedAt = s.store.Now()
	return s.store.Save(ctx)
}

func (s *goalService) Delete(ctx context.Context, horizonID, id string) error {
	doc := s.store.Document()
	bucket := doc.GoalsByHorizon[horizonID]
	for i, g := range bucket {
		if g.ID == id {
			doc.GoalsByHorizon[horizonID] = append(bucket[:i], bucket[i+1:]...)
			return s.store.Save(ctx)
		}
	}
	return fmt.Errorf("goal %q: %w", id, ErrNotFound)
}

func (s *goalService) SelectedHorizon() domain.Horizon {
	id := s.store.Document().SelectedHorizonID
	for _, h := range domain.Horizons {
		if h.ID == id {
			return h
		}
	}
	return domain.Horizons[0]
}

func (s *goalService) SelectHorizon(ctx context.Context, horizonID string) error {
	if !domain.ValidHorizonID(horizonID) {
		return fmt.Errorf("horizon %q: %w", horizonID, ErrInvalidHorizon)
	}
	s.store.Document().SelectedHorizonID = horizonID
	return s.store.Save(ctx)
}
