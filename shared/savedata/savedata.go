// Package savedata keeps small JSON records between runs in the gdata store.
package savedata

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// SessionKey is the gdata item holding the last session.
const SessionKey = "session"

// Session is the data kept between runs
type Session struct {
	LastLevel string `json:"lastLevel"`
	Respawns  int    `json:"respawns"`
}

// Items is the part of *gdata.Manager the store needs.
type Items interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	items Items
}

// Open opens the gdata store for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(items Items) *Store {
	return &Store{items: items}
}

// LoadSession returns the saved session, or nil when there is none.
func (s *Store) LoadSession() (*Session, error) {
	data, err := s.items.LoadItem(SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", SessionKey, err)
	}
	if data == nil {
		return nil, nil
	}

	var saved Session
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse %s: %w", SessionKey, err)
	}
	return &saved, nil
}

func (s *Store) SaveSession(saved Session) error {
	data, err := json.Marshal(saved)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(SessionKey, data); err != nil {
		return fmt.Errorf("save %s: %w", SessionKey, err)
	}
	return nil
}
