package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/plans/internal/domain"
	"github.com/alexanderramin/plans/internal/store"
	"github.com/google/uuid"
)

type noteService struct {
	store *store.Store
}

func NewNoteService(st *store.Store) NoteService {
	return &noteService{store: st}
}

func (s *noteService) List() []*domain.Note {
	return s.store.Document().Notes
}

func (s *noteService) Get(id string) (*domain.Note, error) {
	for _, n := range s.store.Document().Notes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, fmt.Errorf("note %q: %w", id, ErrNotFound)
}

func (s *noteService) Add(ctx context.Context, title, body string) (*domain.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	now := s.store.Now()
	note := &domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      strings.TrimSpace(body),
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc := s.store.Document()
	doc.Notes = append([]*domain.Note{note}, doc.Notes...)
	if err := s.store.Save(ctx); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Edit(ctx context.Context, id, title, body string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	note, err := s.Get(id)
	if err != nil {
		return err
	}
	note.Title = title
	note.Body = strings.TrimSpace(body)
	note.UpdatedAt = s.store.Now()
	return s.store.Save(ctx)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	doc := s.store.Document()
	for i, n := range doc.Notes {
		if n.ID == id {
			doc.Notes = append(doc.Notes[:i], doc.Notes[i+1:]...)
			return s.store.Save(ctx)
		}
	}
	return fmt.Errorf("note %q: %w", id, ErrNotFound)
}
