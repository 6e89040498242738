package savedata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type failingItems struct{}

var errDisk = errors.New("disk full")

func (failingItems) LoadItem(string) ([]byte, error) { return nil, errDisk }
func (failingItems) SaveItem(string, []byte) error   { return errDisk }

func TestSessionStoredUnderSessionKey(t *testing.T) {
	items := memItems{}
	s := NewStore(items)

	require.NoError(t, s.SaveSession(Session{LastLevel: "levels/level2.tmx", Respawns: 3}))
	require.Contains(t, items, "session")
	assert.JSONEq(t, `{"lastLevel":"levels/level2.tmx","respawns":3}`, string(items["session"]))

	saved, err := s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, &Session{LastLevel: "levels/level2.tmx", Respawns: 3}, saved)
}

func TestLoadSessionWithoutData(t *testing.T) {
	saved, err := NewStore(memItems{}).LoadSession()
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLoadSessionErrors(t *testing.T) {
	_, err := NewStore(memItems{SessionKey: []byte("{not json")}).LoadSession()
	assert.Error(t, err)

	_, err = NewStore(failingItems{}).LoadSession()
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, NewStore(failingItems{}).SaveSession(Session{}), errDisk)
}
