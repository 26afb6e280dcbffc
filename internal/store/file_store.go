package store

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"gatepass/internal/model"
)

// FileStore persists the dataset as a single JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore builds a file-backed store at the given path. The file is not
// created until the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the dataset file. A missing or unreadable file and
// malformed JSON all degrade to an empty dataset.
func (s *FileStore) Load(_ context.Context) *model.Dataset {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: read %s: %v", s.path, err)
		}
		return model.NewDataset()
	}

	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		log.Printf("store: decode %s: %v", s.path, err)
		return model.NewDataset()
	}
	if ds.Users == nil {
		ds.Users = []model.User{}
	}
	if ds.Requests == nil {
		ds.Requests = []model.GatePassRequest{}
	}
	return &ds
}

// Save writes the whole dataset atomically relative to this process: encode
// to a temp file in the same directory, then rename over the target.
func (s *FileStore) Save(_ context.Context, ds *model.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
