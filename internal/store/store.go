// Package store implements the record store: typed collection persistence
// over a synchronous key-value medium. Each collection is one JSON array
// under one key, snapshotted whole on every write.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"fieldcrm/pkg/domain"
)

// ErrorKind classifies a storage failure.
type ErrorKind string

const (
	KindRead   ErrorKind = "read"
	KindWrite  ErrorKind = "write"
	KindDecode ErrorKind = "decode"
	KindEncode ErrorKind = "encode"
)

// StorageError is the typed failure returned by the store layer. Repositories
// convert it into safe defaults so callers always get a value; the error
// itself never crosses the repository boundary.
type StorageError struct {
	Kind ErrorKind
	Key  domain.CollectionName
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Kind, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(kind ErrorKind, key domain.CollectionName, err error) error {
	return &StorageError{Kind: kind, Key: key, Err: err}
}

// Store wraps a Medium with collection-level encode/decode.
type Store struct {
	medium domain.Medium
	log    *slog.Logger
}

// New constructs a record store over the given medium.
func New(medium domain.Medium, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{medium: medium, log: log}
}

// Medium exposes the underlying key-value medium.
func (s *Store) Medium() domain.Medium { return s.medium }

// Log returns the store's logger.
func (s *Store) Log() *slog.Logger { return s.log }

// Close releases the underlying medium.
func (s *Store) Close() error { return s.medium.Close() }

// Clear removes the given keys from the medium.
func (s *Store) Clear(keys ...domain.CollectionName) error {
	for _, key := range keys {
		if err := s.medium.Delete(string(key)); err != nil {
			return storageErr(KindWrite, key, err)
		}
	}
	return nil
}

// ReadAll loads a collection. A missing key yields an empty sequence; medium
// and decode failures surface as *StorageError.
func ReadAll[T any](s *Store, key domain.CollectionName) ([]T, error) {
	payload, ok, err := s.medium.Read(string(key))
	if err != nil {
		return nil, storageErr(KindRead, key, err)
	}
	if !ok || len(payload) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, storageErr(KindDecode, key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// WriteAll replaces a collection wholesale.
func WriteAll[T any](s *Store, key domain.CollectionName, records []T) error {
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return storageErr(KindEncode, key, err)
	}
	if err := s.medium.Write(string(key), payload); err != nil {
		return storageErr(KindWrite, key, err)
	}
	return nil
}

// ReadOne loads a single record stored directly under key (the current-user
// pointer). Absence is reported via ok=false.
func ReadOne[T any](s *Store, key domain.CollectionName) (T, bool, error) {
	var record T
	payload, ok, err := s.medium.Read(string(key))
	if err != nil {
		return record, false, storageErr(KindRead, key, err)
	}
	if !ok || len(payload) == 0 {
		return record, false, nil
	}
	if err := json.Unmarshal(payload, &record); err != nil {
		return record, false, storageErr(KindDecode, key, err)
	}
	return record, true, nil
}

// WriteOne stores a single record directly under key.
func WriteOne[T any](s *Store, key domain.CollectionName, record T) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return storageErr(KindEncode, key, err)
	}
	if err := s.medium.Write(string(key), payload); err != nil {
		return storageErr(KindWrite, key, err)
	}
	return nil
}
