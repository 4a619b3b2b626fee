// Package cas stores plan records addressed by their plan key.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/decider/internal/core/domain"
	"go.trai.ch/decider/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.PlanStore with one JSON file per plan key.
type Store struct{}

var _ ports.PlanStore = (*Store)(nil)

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the plan record stored under key. Records written by another
// format version are treated as missing.
func (s *Store) Get(root, key string) (*domain.PlanRecord, error) {
	filename, err := s.filename(root, key)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is the store directory joined with a validated key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "key", key)
	}

	var record domain.PlanRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "key", key)
	}
	if record.Version != domain.PlanRecordVersion {
		return nil, nil
	}

	return &record, nil
}

// Put stores record under its key.
func (s *Store) Put(root string, record domain.PlanRecord) error {
	filename, err := s.filename(root, record.Key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrStoreCreateFailed, err.Error())
	}

	//nolint:gosec // Path is the store directory joined with a validated key
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	return nil
}

func (s *Store) filename(root, key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, "invalid plan key"), "key", key)
	}
	return filepath.Join(root, domain.DefaultStorePath(), key+".json"), nil
}
