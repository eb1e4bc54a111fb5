package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bnema/zoo-api/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleAnimals = []domain.Animal{
	{ID: "0", Name: "Sarah", Species: "bear", Diet: "carnivore", PersonalityTraits: []string{"hungry", "zany"}},
	{ID: "1", Name: "Ghost", Species: "owl", Diet: "carnivore"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    Format
		wantErr bool
	}{
		{raw: "json", want: FormatJSON},
		{raw: " YAML ", want: FormatYAML},
		{raw: "yml", want: FormatYAML},
		{raw: "toml", want: FormatTOML},
		{raw: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFormat(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnimalsJSONMatchesBackingFileShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Animals(&buf, FormatJSON, sampleAnimals))

	assert.Contains(t, buf.String(), "{\n  \"animals\": [\n")
	assert.Contains(t, buf.String(), "\"personalityTraits\": []")

	var doc animalDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Len(t, doc.Animals, 2)
}

func TestAnimalsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Animals(&buf, FormatYAML, sampleAnimals))

	var doc animalDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Animals, 2)
	assert.Equal(t, []string{"hungry", "zany"}, doc.Animals[0].PersonalityTraits)
	assert.Contains(t, buf.String(), "personalityTraits:")
}

func TestZookeepersTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Zookeepers(&buf, FormatTOML, []domain.Zookeeper{
		{ID: "0", Name: "Raksha", Age: 31, FavoriteAnimal: "penguin"},
	}))

	assert.Contains(t, buf.String(), "[[zookeepers]]")

	var doc zookeeperDocument
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []zookeeperEntry{{ID: "0", Name: "Raksha", Age: 31, FavoriteAnimal: "penguin"}}, doc.Zookeepers)
}

func TestUnsupportedFormat(t *testing.T) {
	err := Animals(&bytes.Buffer{}, Format("csv"), sampleAnimals)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
