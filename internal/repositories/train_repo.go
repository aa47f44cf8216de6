package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// TrainRepository persists the train catalog (coaches and their seat maps
// embedded) as one JSON file, catalog order preserved.
type TrainRepository struct {
	path   string
	trains []*models.Train
}

func NewTrainRepository(path string) (*TrainRepository, error) {
	r := &TrainRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	utils.LogEvent("trains", "load", fmt.Sprintf("count=%d path=%s", len(r.trains), path))
	return r, nil
}

func (r *TrainRepository) load() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.trains = []*models.Train{}
			return nil
		}
		return fmt.Errorf("read trains file: %w", err)
	}
	var trains []*models.Train
	if err := json.Unmarshal(raw, &trains); err != nil {
		return fmt.Errorf("decode trains file: %w", err)
	}
	r.trains = trains
	return nil
}

func (r *TrainRepository) Save() error {
	raw, err := json.MarshalIndent(r.trains, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trains: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write trains file: %w", err)
	}
	return nil
}

func (r *TrainRepository) FindByID(id string) (*models.Train, bool) {
	for _, t := range r.trains {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Search matches a case-insensitive substring against train name or id.
// An empty query returns the whole catalog in insertion order.
func (r *TrainRepository) Search(query string) []*models.Train {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]*models.Train, len(r.trains))
		copy(out, r.trains)
		return out
	}
	results := []*models.Train{}
	for _, t := range r.trains {
		if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.ID), q) {
			results = append(results, t)
		}
	}
	return results
}

// SaveOrUpdate replaces the train matching by id, or appends it, then
// persists the catalog.
func (r *TrainRepository) SaveOrUpdate(train *models.Train) error {
	if train == nil || strings.TrimSpace(train.ID) == "" {
		return fmt.Errorf("train id cannot be empty")
	}
	replaced := false
	for i, existing := range r.trains {
		if existing.ID == train.ID {
			r.trains[i] = train
			replaced = true
			break
		}
	}
	if !replaced {
		r.trains = append(r.trains, train)
	}
	return r.Save()
}

func (r *TrainRepository) Trains() []*models.Train {
	out := make([]*models.Train, len(r.trains))
	copy(out, r.trains)
	return out
}
