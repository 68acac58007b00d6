package replay

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata"
)

var ErrNotFound = errors.New("replay: recording not found")

// Store keeps recordings in the per-user data directory.
type Store struct {
	m *gdata.Manager
}

func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("replay: open store: %w", err)
	}
	return &Store{m: m}, nil
}

func (s *Store) Save(name string, rec *Recording) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("replay: save %s: %w", name, err)
	}
	return nil
}

func (s *Store) Load(name string) (*Recording, error) {
	data, err := s.m.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return Unmarshal(data)
}

func itemKey(name string) string {
	return "replay_" + name
}
