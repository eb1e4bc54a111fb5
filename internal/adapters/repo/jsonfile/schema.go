package jsonfile

import "github.com/bnema/zoo-api/internal/domain"

const (
	animalsKey    = "animals"
	zookeepersKey = "zookeepers"
)

type animalSchema struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Species           string   `json:"species"`
	Diet              string   `json:"diet"`
	PersonalityTraits []string `json:"personalityTraits"`
}

type zookeeperSchema struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	FavoriteAnimal string `json:"favoriteAnimal"`
}

func toAnimalSchema(animal domain.Animal) animalSchema {
	traits := animal.PersonalityTraits
	if traits == nil {
		traits = []string{}
	}

	return animalSchema{
		ID:                animal.ID,
		Name:              animal.Name,
		Species:           animal.Species,
		Diet:              animal.Diet,
		PersonalityTraits: traits,
	}
}

func fromAnimalSchema(animal animalSchema) domain.Animal {
	return domain.Animal{
		ID:                animal.ID,
		Name:              animal.Name,
		Species:           animal.Species,
		Diet:              animal.Diet,
		PersonalityTraits: animal.PersonalityTraits,
	}
}

func toZookeeperSchema(keeper domain.Zookeeper) zookeeperSchema {
	return zookeeperSchema{
		ID:             keeper.ID,
		Name:           keeper.Name,
		Age:            keeper.Age,
		FavoriteAnimal: keeper.FavoriteAnimal,
	}
}

func fromZookeeperSchema(keeper zookeeperSchema) domain.Zookeeper {
	return domain.Zookeeper{
		ID:             keeper.ID,
		Name:           keeper.Name,
		Age:            keeper.Age,
		FavoriteAnimal: keeper.FavoriteAnimal,
	}
}
