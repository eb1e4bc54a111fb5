package domain

type Animal struct {
	ID                string
	Name              string
	Species           string
	Diet              string
	PersonalityTraits []string
}

func (a Animal) RecordID() string {
	return a.ID
}

func (a Animal) WithID(id string) Animal {
	a.ID = id
	a.PersonalityTraits = cloneStrings(a.PersonalityTraits)
	return a
}

// HasTraits reports whether every trait is present on the animal.
func (a Animal) HasTraits(traits []string) bool {
	for _, trait := range traits {
		if !containsString(a.PersonalityTraits, trait) {
			return false
		}
	}

	return true
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}

	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}
