package httpapi

// Public JSON shapes. They mirror the backing file so clients see records
// exactly as they are stored.

type AnimalView struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`
}

type ZookeeperView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	FavoriteAnimal string `json:"favoriteAnimal"`
}

type HealthView struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// APIError is the payload for failures that are not client input errors.
type APIError struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"` // RFC3339
}
