package ports

import (
	"context"

	"github.com/bnema/zoo-api/internal/domain"
)

type ZookeeperRepository interface {
	GetByID(ctx context.Context, id string) (domain.Zookeeper, error)
	List(ctx context.Context) ([]domain.Zookeeper, error)
	Create(ctx context.Context, keeper domain.Zookeeper) (domain.Zookeeper, error)
}
