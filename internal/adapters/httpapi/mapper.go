package httpapi

import "github.com/bnema/zoo-api/internal/domain"

func FromAnimal(animal domain.Animal) AnimalView {
	traits := animal.PersonalityTraits
	if traits == nil {
		traits = []string{}
	}

	return AnimalView{
		ID:                animal.ID,
		Name:              animal.Name,
		Species:           animal.Species,
		Diet:              animal.Diet,
		PersonalityTraits: traits,
	}
}

func FromAnimals(animals []domain.Animal) []AnimalView {
	views := make([]AnimalView, 0, len(animals))
	for _, animal := range animals {
		views = append(views, FromAnimal(animal))
	}
	return views
}

func FromZookeeper(keeper domain.Zookeeper) ZookeeperView {
	return ZookeeperView{
		ID:             keeper.ID,
		Name:           keeper.Name,
		Age:            keeper.Age,
		FavoriteAnimal: keeper.FavoriteAnimal,
	}
}

func FromZookeepers(keepers []domain.Zookeeper) []ZookeeperView {
	views := make([]ZookeeperView, 0, len(keepers))
	for _, keeper := range keepers {
		views = append(views, FromZookeeper(keeper))
	}
	return views
}
