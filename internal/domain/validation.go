package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	FieldName              = "name"
	FieldSpecies           = "species"
	FieldDiet              = "diet"
	FieldPersonalityTraits = "personalityTraits"
	FieldAge               = "age"
	FieldFavoriteAnimal    = "favoriteAnimal"
)

const (
	ReasonMissing     = "missing"
	ReasonNotString   = "not a string"
	ReasonNotSequence = "not a sequence of strings"
	ReasonNotNumber   = "not a whole number"
)

// Candidate is an untyped create request body, as decoded from JSON or a
// form. Field types are checked by the Validate functions.
type Candidate map[string]any

type Violation struct {
	Field  string
	Reason string
}

type Validation struct {
	Kind       string
	Violations []Violation
}

func (v Validation) Valid() bool {
	return len(v.Violations) == 0
}

// Err returns a *ValidationError for an invalid result and nil otherwise.
func (v Validation) Err() error {
	if v.Valid() {
		return nil
	}

	return &ValidationError{Kind: v.Kind, Violations: v.Violations}
}

type ValidationError struct {
	Kind       string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", violation.Field, violation.Reason))
	}

	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// ValidateAnimal checks that name, species and diet are strings and that
// personalityTraits is a sequence of strings. Every field is checked.
func ValidateAnimal(c Candidate) Validation {
	v := Validation{Kind: "animal"}
	v.requireString(c, FieldName)
	v.requireString(c, FieldSpecies)
	v.requireString(c, FieldDiet)
	v.requireStrings(c, FieldPersonalityTraits)
	return v
}

// ValidateZookeeper checks that name and favoriteAnimal are strings and that
// age is a whole number.
func ValidateZookeeper(c Candidate) Validation {
	v := Validation{Kind: "zookeeper"}
	v.requireString(c, FieldName)
	v.requireWholeNumber(c, FieldAge)
	v.requireString(c, FieldFavoriteAnimal)
	return v
}

// AnimalFromCandidate converts c into an Animal without an identifier.
func AnimalFromCandidate(c Candidate) (Animal, error) {
	if err := ValidateAnimal(c).Err(); err != nil {
		return Animal{}, err
	}

	traits, _ := stringsValue(c[FieldPersonalityTraits])
	return Animal{
		Name:              c[FieldName].(string),
		Species:           c[FieldSpecies].(string),
		Diet:              c[FieldDiet].(string),
		PersonalityTraits: traits,
	}, nil
}

// ZookeeperFromCandidate converts c into a Zookeeper without an identifier.
func ZookeeperFromCandidate(c Candidate) (Zookeeper, error) {
	if err := ValidateZookeeper(c).Err(); err != nil {
		return Zookeeper{}, err
	}

	age, _ := wholeNumberValue(c[FieldAge])
	return Zookeeper{
		Name:           c[FieldName].(string),
		Age:            age,
		FavoriteAnimal: c[FieldFavoriteAnimal].(string),
	}, nil
}

func (v *Validation) requireString(c Candidate, field string) {
	value, ok := c[field]
	if !ok || value == nil {
		v.add(field, ReasonMissing)
		return
	}
	if _, ok := value.(string); !ok {
		v.add(field, ReasonNotString)
	}
}

func (v *Validation) requireStrings(c Candidate, field string) {
	value, ok := c[field]
	if !ok || value == nil {
		v.add(field, ReasonMissing)
		return
	}
	if _, ok := stringsValue(value); !ok {
		v.add(field, ReasonNotSequence)
	}
}

func (v *Validation) requireWholeNumber(c Candidate, field string) {
	value, ok := c[field]
	if !ok || value == nil {
		v.add(field, ReasonMissing)
		return
	}
	if _, ok := wholeNumberValue(value); !ok {
		v.add(field, ReasonNotNumber)
	}
}

func (v *Validation) add(field, reason string) {
	v.Violations = append(v.Violations, Violation{Field: field, Reason: reason})
}

func stringsValue(value any) ([]string, bool) {
	switch typed := value.(type) {
	case []string:
		return cloneStrings(typed), true
	case []any:
		result := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			result = append(result, s)
		}
		return result, true
	default:
		return nil, false
	}
}

func wholeNumberValue(value any) (int, bool) {
	var number float64
	switch typed := value.(type) {
	case int:
		return typed, true
	case int64:
		if int64(int(typed)) != typed {
			return 0, false
		}
		return int(typed), true
	case float64:
		number = typed
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}

	if math.IsNaN(number) || math.IsInf(number, 0) || number != math.Trunc(number) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up, so the upper bound is exclusive.
	if number < float64(math.MinInt) || number >= -float64(math.MinInt) {
		return 0, false
	}

	return int(number), true
}
