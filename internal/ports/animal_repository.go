package ports

import (
	"context"

	"github.com/bnema/zoo-api/internal/domain"
)

type AnimalRepository interface {
	GetByID(ctx context.Context, id string) (domain.Animal, error)
	List(ctx context.Context) ([]domain.Animal, error)
	Create(ctx context.Context, animal domain.Animal) (domain.Animal, error)
}
