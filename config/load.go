package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/pupu/actors"
	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/kinematic"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// tuning is the layout of an override file. Sections and keys that are
// absent keep their current values.
type tuning struct {
	Game        *Config            `yaml:"game"`
	Character   *kinematic.Config  `yaml:"character"`
	Collision   *collision.Config  `yaml:"collision"`
	Actors      *actors.Config     `yaml:"actors"`
	Render      *RenderConfig      `yaml:"render"`
	Camera      *CameraConfig      `yaml:"camera"`
	Debug       *DebugConfig       `yaml:"debug"`
	Persistence *PersistenceConfig `yaml:"persistence"`
}

// LoadFile applies a YAML override file to the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides into the global configuration. Unknown keys
// are rejected. On error the globals are left untouched.
func Apply(data []byte) error {
	game, character, coll, act := *C, Character, Collision, Actors
	render, camera, debug, persist := Render, Camera, Debug, Persistence

	t := tuning{
		Game:        &game,
		Character:   &character,
		Collision:   &coll,
		Actors:      &act,
		Render:      &render,
		Camera:      &camera,
		Debug:       &debug,
		Persistence: &persist,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	switch {
	case game.Width <= 0 || game.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, game.Width, game.Height)
	case character.ReferenceFPS <= 0:
		return fmt.Errorf("%w: character.referenceFPS %d", ErrInvalid, character.ReferenceFPS)
	case character.MaxSubsteps <= 0:
		return fmt.Errorf("%w: character.maxSubsteps %d", ErrInvalid, character.MaxSubsteps)
	case coll.PixelSize <= 0:
		return fmt.Errorf("%w: collision.pixelSize %d", ErrInvalid, coll.PixelSize)
	}

	*C = game
	Character, Collision, Actors = character, coll, act
	Render, Camera, Debug, Persistence = render, camera, debug, persist
	return nil
}
