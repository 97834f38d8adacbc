package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/plans/internal/store"
)

type dataService struct {
	store *store.Store
}

func NewDataService(st *store.Store) DataService {
	return &dataService{store: st}
}

func (s *dataService) Export(ctx context.Context, dir string) (string, error) {
	body, err := s.store.ExportJSON()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, store.ExportFilename)
	if err := os.WriteFile(path, body, 0644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}

func (s *dataService) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}
	return s.store.Import(ctx, data)
}

func (s *dataService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

func (s *dataService) LastSaved() time.Time {
	return s.store.Document().UpdatedAt
}
