package records

import (
	"fmt"
	"strings"

	"github.com/bnema/zoo-api/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func RenderAnimals(animals []domain.Animal) (string, error) {
	return run(func(s styles) string {
		return animalsView(animals, s)
	})
}

func RenderZookeepers(keepers []domain.Zookeeper) (string, error) {
	return run(func(s styles) string {
		return zookeepersView(keepers, s)
	})
}

func animalsView(animals []domain.Animal, s styles) string {
	lines := []string{
		s.title.Render("Animals"),
		s.header.Render(fmt.Sprintf("records: %d", len(animals))),
	}

	if len(animals) == 0 {
		lines = append(lines, s.empty.Render("No animals match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, animal := range animals {
		lines = append(lines, s.section.Render(animalBlock(animal, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func animalBlock(animal domain.Animal, s styles) string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		s.name.Render(animal.Name),
		s.id.Render(fmt.Sprintf(" (%s)", animal.ID)),
	)

	traits := "none"
	if len(animal.PersonalityTraits) > 0 {
		traits = strings.Join(animal.PersonalityTraits, ", ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		s.detail.Render(fmt.Sprintf("species: %s", animal.Species)),
		s.detail.Render(fmt.Sprintf("diet: %s", animal.Diet)),
		s.trait.Render(fmt.Sprintf("traits: %s", traits)),
	)
}

func zookeepersView(keepers []domain.Zookeeper, s styles) string {
	lines := []string{
		s.title.Render("Zookeepers"),
		s.header.Render(fmt.Sprintf("records: %d", len(keepers))),
	}

	if len(keepers) == 0 {
		lines = append(lines, s.empty.Render("No zookeepers match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, keeper := range keepers {
		title := lipgloss.JoinHorizontal(lipgloss.Top,
			s.name.Render(keeper.Name),
			s.id.Render(fmt.Sprintf(" (%s)", keeper.ID)),
		)
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			title,
			s.detail.Render(fmt.Sprintf("age: %d", keeper.Age)),
			s.detail.Render(fmt.Sprintf("favorite animal: %s", keeper.FavoriteAnimal)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
