package domain

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	QueryName              = "name"
	QuerySpecies           = "species"
	QueryDiet              = "diet"
	QueryPersonalityTraits = "personalityTraits"
	QueryAge               = "age"
	QueryFavoriteAnimal    = "favoriteAnimal"
)

// Query maps a field name to one or more requested values. It has the same
// shape as url.Values so request query strings convert without copying.
type Query map[string][]string

func QueryFromValues(values url.Values) Query {
	return Query(values)
}

func (q Query) value(key string) (string, bool) {
	values := q[key]
	if len(values) == 0 || values[0] == "" {
		return "", false
	}

	return values[0], true
}

func (q Query) values(key string) []string {
	result := make([]string, 0, len(q[key]))
	for _, value := range q[key] {
		if value == "" {
			continue
		}
		result = append(result, value)
	}

	return result
}

// FilterAnimals narrows animals to those matching every recognized key in q.
// Unrecognized keys are ignored and relative order is preserved.
func FilterAnimals(q Query, animals []Animal) []Animal {
	results := animals

	if traits := q.values(QueryPersonalityTraits); len(traits) > 0 {
		results = filter(results, func(animal Animal) bool {
			return animal.HasTraits(traits)
		})
	}
	if diet, ok := q.value(QueryDiet); ok {
		results = filter(results, func(animal Animal) bool {
			return animal.Diet == diet
		})
	}
	if species, ok := q.value(QuerySpecies); ok {
		results = filter(results, func(animal Animal) bool {
			return animal.Species == species
		})
	}
	if name, ok := q.value(QueryName); ok {
		results = filter(results, func(animal Animal) bool {
			return animal.Name == name
		})
	}

	return results
}

// FilterZookeepers narrows zookeepers to those matching every recognized key
// in q. An age that does not parse as a number matches nothing.
func FilterZookeepers(q Query, keepers []Zookeeper) []Zookeeper {
	results := keepers

	if raw, ok := q.value(QueryAge); ok {
		age, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		results = filter(results, func(keeper Zookeeper) bool {
			return err == nil && float64(keeper.Age) == age
		})
	}
	if favorite, ok := q.value(QueryFavoriteAnimal); ok {
		results = filter(results, func(keeper Zookeeper) bool {
			return keeper.FavoriteAnimal == favorite
		})
	}
	if name, ok := q.value(QueryName); ok {
		results = filter(results, func(keeper Zookeeper) bool {
			return keeper.Name == name
		})
	}

	return results
}

func filter[T any](records []T, keep func(T) bool) []T {
	results := make([]T, 0, len(records))
	for _, record := range records {
		if keep(record) {
			results = append(results, record)
		}
	}

	return results
}
