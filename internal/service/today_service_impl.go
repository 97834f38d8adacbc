package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/alexanderramin/plans/internal/store"
	"github.com/google/uuid"
)

type todayService struct {
	store *store.Store
}

func NewTodayService(st *store.Store) TodayService {
	return &todayService{store: st}
}

func (s *todayService) EnsureRollover(ctx context.Context) (bool, error) {
	doc := s.store.Document()
	key := domain.DateKey(s.store.Now())
	if doc.Today.Date == key {
		return false, nil
	}

	// A new calendar day: keep the items, clear their completion state.
	doc.Today.Date = key
	for _, item := range doc.Today.Items {
		item.Done = false
	}
	if err := s.store.Save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *todayService) Items() []*domain.TodayItem {
	return s.store.Document().Today.Items
}

func (s *todayService) TasksDueToday() []*domain.WeekTask {
	tasks := s.store.Document().WeekTasks
	return domain.TasksForDay(tasks, domain.DayIndexFor(s.store.Now()))
}

func (s *todayService) Add(ctx context.Context, title string) (*domain.TodayItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	item := &domain.TodayItem{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: s.store.Now(),
	}

	doc := s.store.Document()
	doc.Today.Items = append([]*domain.TodayItem{item}, doc.Today.Items...)
	if err := s.store.Save(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *todayService) Edit(ctx context.Context, id, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	item, err := s.get(id)
	if err != nil {
		return err
	}
	item.Title = title
	return s.store.Save(ctx)
}

func (s *todayService) ToggleDone(ctx context.Context, id string) error {
	item, err := s.get(id)
	if err != nil {
		return err
	}
	item.Done = !item.Done
	return s.store.Save(ctx)
}

func (s *todayService) Delete(ctx context.Context, id string) error {
	doc := s.store.Document()
	for i, item := range doc.Today.Items {
		if item.ID == id {
			doc.Today.Items = append(doc.Today.Items[:i], doc.Today.Items[i+1:]...)
			return s.store.Save(ctx)
		}
	}
	return fmt.Errorf("today item %q: %w", id, ErrNotFound)
}

func (s *todayService) get(id string) (*domain.TodayItem, error) {
	for _, item := range s.store.Document().Today.Items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("today item %q: %w", id, ErrNotFound)
}
