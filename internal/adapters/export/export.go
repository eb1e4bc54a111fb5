// Package export writes record collections in the backing-file shape using
// one of several text formats.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/zoo-api/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

func ParseFormat(raw string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(raw))); format {
	case FormatJSON, FormatYAML, FormatTOML:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

type animalDocument struct {
	Animals []animalEntry `json:"animals" yaml:"animals" toml:"animals"`
}

type animalEntry struct {
	ID                string   `json:"id" yaml:"id" toml:"id"`
	Name              string   `json:"name" yaml:"name" toml:"name"`
	Species           string   `json:"species" yaml:"species" toml:"species"`
	Diet              string   `json:"diet" yaml:"diet" toml:"diet"`
	PersonalityTraits []string `json:"personalityTraits" yaml:"personalityTraits" toml:"personalityTraits"`
}

type zookeeperDocument struct {
	Zookeepers []zookeeperEntry `json:"zookeepers" yaml:"zookeepers" toml:"zookeepers"`
}

type zookeeperEntry struct {
	ID             string `json:"id" yaml:"id" toml:"id"`
	Name           string `json:"name" yaml:"name" toml:"name"`
	Age            int    `json:"age" yaml:"age" toml:"age"`
	FavoriteAnimal string `json:"favoriteAnimal" yaml:"favoriteAnimal" toml:"favoriteAnimal"`
}

func Animals(w io.Writer, format Format, animals []domain.Animal) error {
	doc := animalDocument{Animals: make([]animalEntry, 0, len(animals))}
	for _, animal := range animals {
		traits := animal.PersonalityTraits
		if traits == nil {
			traits = []string{}
		}
		doc.Animals = append(doc.Animals, animalEntry{
			ID:                animal.ID,
			Name:              animal.Name,
			Species:           animal.Species,
			Diet:              animal.Diet,
			PersonalityTraits: traits,
		})
	}

	return encode(w, format, doc)
}

func Zookeepers(w io.Writer, format Format, keepers []domain.Zookeeper) error {
	doc := zookeeperDocument{Zookeepers: make([]zookeeperEntry, 0, len(keepers))}
	for _, keeper := range keepers {
		doc.Zookeepers = append(doc.Zookeepers, zookeeperEntry{
			ID:             keeper.ID,
			Name:           keeper.Name,
			Age:            keeper.Age,
			FavoriteAnimal: keeper.FavoriteAnimal,
		})
	}

	return encode(w, format, doc)
}

func encode(w io.Writer, format Format, doc any) error {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json export: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
	case FormatTOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode toml export: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	_, err := w.Write(buf.Bytes())
	return err
}
