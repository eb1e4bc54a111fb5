package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/zoo-api/internal/domain"
	"github.com/bnema/zoo-api/internal/ports"
)

// CreatedRecorder is notified after a record has been stored.
type CreatedRecorder interface {
	RecordCreated(kind string)
}

type Service struct {
	animals    ports.AnimalRepository
	zookeepers ports.ZookeeperRepository
	logger     *slog.Logger
	created    CreatedRecorder
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithCreatedRecorder(recorder CreatedRecorder) Option {
	return func(s *Service) {
		s.created = recorder
	}
}

func NewService(animals ports.AnimalRepository, zookeepers ports.ZookeeperRepository, opts ...Option) *Service {
	s := &Service{
		animals:    animals,
		zookeepers: zookeepers,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) ListAnimals(ctx context.Context, query domain.Query) ([]domain.Animal, error) {
	animals, err := s.animals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}

	return domain.FilterAnimals(query, animals), nil
}

func (s *Service) GetAnimal(ctx context.Context, id string) (domain.Animal, error) {
	animal, err := s.animals.GetByID(ctx, id)
	if err != nil {
		return domain.Animal{}, fmt.Errorf("get animal by id: %w", err)
	}

	return animal, nil
}

// CreateAnimal validates the candidate and stores it under the next
// sequential identifier. Any identifier in the candidate is ignored.
func (s *Service) CreateAnimal(ctx context.Context, candidate domain.Candidate) (domain.Animal, error) {
	animal, err := domain.AnimalFromCandidate(candidate)
	if err != nil {
		return domain.Animal{}, err
	}

	created, err := s.animals.Create(ctx, animal)
	if err != nil {
		return domain.Animal{}, fmt.Errorf("create animal: %w", err)
	}

	s.recordCreated("animal")
	s.logger.InfoContext(ctx, "animal created", "id", created.ID, "name", created.Name, "species", created.Species)

	return created, nil
}

func (s *Service) ListZookeepers(ctx context.Context, query domain.Query) ([]domain.Zookeeper, error) {
	keepers, err := s.zookeepers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zookeepers: %w", err)
	}

	return domain.FilterZookeepers(query, keepers), nil
}

func (s *Service) GetZookeeper(ctx context.Context, id string) (domain.Zookeeper, error) {
	keeper, err := s.zookeepers.GetByID(ctx, id)
	if err != nil {
		return domain.Zookeeper{}, fmt.Errorf("get zookeeper by id: %w", err)
	}

	return keeper, nil
}

func (s *Service) CreateZookeeper(ctx context.Context, candidate domain.Candidate) (domain.Zookeeper, error) {
	keeper, err := domain.ZookeeperFromCandidate(candidate)
	if err != nil {
		return domain.Zookeeper{}, err
	}

	created, err := s.zookeepers.Create(ctx, keeper)
	if err != nil {
		return domain.Zookeeper{}, fmt.Errorf("create zookeeper: %w", err)
	}

	s.recordCreated("zookeeper")
	s.logger.InfoContext(ctx, "zookeeper created", "id", created.ID, "name", created.Name)

	return created, nil
}

func (s *Service) recordCreated(kind string) {
	if s.created != nil {
		s.created.RecordCreated(kind)
	}
}
