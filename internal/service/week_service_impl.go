package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/alexanderramin/plans/internal/store"
	"github.com/google/uuid"
)

type weekService struct {
	store *store.Store
}

func NewWeekService(st *store.Store) WeekService {
	return &weekService{store: st}
}

func (s *weekService) Tasks() []*domain.WeekTask {
	return s.store.Document().WeekTasks
}

func (s *weekService) TasksForDay(dayIndex int) []*domain.WeekTask {
	return domain.TasksForDay(s.store.Document().WeekTasks, dayIndex)
}

func (s *weekService) Get(id string) (*domain.WeekTask, error) {
	for _, t := range s.store.Document().WeekTasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("week task %q: %w", id, ErrNotFound)
}

func (s *weekService) Add(ctx context.Context, title, notes string, dayIndex int, horizonID string) (*domain.WeekTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !domain.ValidDayIndex(dayIndex) {
		return nil, fmt.Errorf("day %d: %w", dayIndex, ErrInvalidDay)
	}
	if !domain.ValidHorizonID(horizonID) {
		return nil, fmt.Errorf("horizon %q: %w", horizonID, ErrInvalidHorizon)
	}

	now := s.store.Now()
	task := &domain.WeekTask{
		ID:        uuid.New().String(),
		Title:     title,
		Notes:     strings.TrimSpace(notes),
		DayIndex:  dayIndex,
		HorizonID: horizonID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc := s.store.Document()
	doc.WeekTasks = append([]*domain.WeekTask{task}, doc.WeekTasks...)
	if err := s.store.Save(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *weekService) Edit(ctx context.Context, id, title, notes string, dayIndex int, horizonID string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if !domain.ValidDayIndex(dayIndex) {
		return fmt.Errorf("day %d: %w", dayIndex, ErrInvalidDay)
	}
	if !domain.ValidHorizonID(horizonID) {
		return fmt.Errorf("horizon %q: %w", horizonID, ErrInvalidHorizon)
	}

	task, err := s.Get(id)
	if err != nil {
		return err
	}
	task.Title = title
	task.Notes = strings.TrimSpace(notes)
	task.DayIndex = dayIndex
	task.HorizonID = horizonID
	task.UpdatedAt = s.store.Now()
	return s.store.Save(ctx)
}

func (s *weekService) ToggleDone(ctx context.Context, id string) error {
	task, err := s.Get(id)
	if err != nil {
		return err
	}
	task.Done = !task.Done
	task.UpdatedAt = s.store.Now()
	return s.store.Save(ctx)
}

func (s *weekService) Delete(ctx context.Context, id string) error {
	doc := s.store.Document()
	for i, t := range doc.WeekTasks {
		if t.ID == id {
			doc.WeekTasks = append(doc.WeekTasks[:i], doc.WeekTasks[i+1:]...)
			return s.store.Save(ctx)
		}
	}
	return fmt.Errorf("week task %q: %w", id, ErrNotFound)
}
