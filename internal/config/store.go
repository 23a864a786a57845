package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wolfeidau/blobctl/internal/deployment"
	"gopkg.in/ini.v1"
)

// ErrNotDeployed indicates there is no persisted deployment record, which
// means deploy has not been run (or cleanup removed it).
var ErrNotDeployed = errors.New("no deployment found, run deploy first")

const (
	keyResourceGroup  = "RESOURCE_GROUP"
	keyStorageAccount = "STORAGE_ACCOUNT"
	keyContainerName  = "CONTAINER_NAME"
	keyLocation       = "LOCATION"
	keyAccountKey     = "ACCOUNT_KEY"
)

// Record is the on-disk union of the deployment identity and the cached
// storage account key. Exactly one record exists at a time; deploy
// overwrites it unconditionally and cleanup removes it.
type Record struct {
	Identity   deployment.Identity
	AccountKey string
}

// Store owns the singleton state file. No other package reads or writes the
// backing file directly. Concurrent invocations against the same file are
// last-writer-wins, there is no locking.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a deployment record is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the persisted record. Returns ErrNotDeployed when the backing
// file is absent. An empty ACCOUNT_KEY is not an error here, callers
// re-fetch the key from the gateway when needed.
func (s *Store) Load() (Record, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return Record{}, ErrNotDeployed
	}

	file, err := ini.Load(s.path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}

	section := file.Section(ini.DefaultSection)

	return Record{
		Identity: deployment.Identity{
			ResourceGroup:  section.Key(keyResourceGroup).String(),
			StorageAccount: section.Key(keyStorageAccount).String(),
			Container:      section.Key(keyContainerName).String(),
			Location:       section.Key(keyLocation).String(),
		},
		AccountKey: section.Key(keyAccountKey).String(),
	}, nil
}

// Save overwrites the state file with the supplied record. The write goes
// to a temp file in the same directory followed by a rename, so a crash
// mid-write never leaves a partial record behind.
func (s *Store) Save(rec Record) error {
	file := ini.Empty()

	section := file.Section(ini.DefaultSection)
	section.Key(keyResourceGroup).SetValue(rec.Identity.ResourceGroup)
	section.Key(keyStorageAccount).SetValue(rec.Identity.StorageAccount)
	section.Key(keyContainerName).SetValue(rec.Identity.Container)
	section.Key(keyLocation).SetValue(rec.Identity.Location)
	section.Key(keyAccountKey).SetValue(rec.AccountKey)

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".blobctl-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := file.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", s.path, err)
	}

	return nil
}

// Delete removes the state file. Removing an absent file is not an error.
func (s *Store) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove state file %s: %w", s.path, err)
	}
	return nil
}

func init() {
	// KEY=value, not KEY = value, to stay compatible with state files
	// written by the original shell tooling.
	ini.PrettyFormat = false
}
