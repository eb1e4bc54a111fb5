package jsonfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/zoo-api/internal/domain"
	"github.com/bnema/zoo-api/internal/ports"
)

const (
	AnimalsFile    = "animals.json"
	ZookeepersFile = "zookeepers.json"
)

type AnimalRepository struct {
	records *collection[domain.Animal, animalSchema]
}

var _ ports.AnimalRepository = (*AnimalRepository)(nil)

// NewAnimalRepository loads the animals file at path. A missing file yields
// an empty collection; the file is created on the first write.
func NewAnimalRepository(path string) (*AnimalRepository, error) {
	records, err := openCollection(path, animalsKey, toAnimalSchema, fromAnimalSchema)
	if err != nil {
		return nil, err
	}

	return &AnimalRepository{records: records}, nil
}

func (r *AnimalRepository) GetByID(ctx context.Context, id string) (domain.Animal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Animal{}, err
	}

	animal, ok := r.records.get(id)
	if !ok {
		return domain.Animal{}, domain.ErrAnimalNotFound
	}

	return animal, nil
}

func (r *AnimalRepository) List(ctx context.Context) ([]domain.Animal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.records.list(), nil
}

func (r *AnimalRepository) Create(ctx context.Context, animal domain.Animal) (domain.Animal, error) {
	if err := ctx.Err(); err != nil {
		return domain.Animal{}, err
	}

	return r.records.create(animal)
}

type ZookeeperRepository struct {
	records *collection[domain.Zookeeper, zookeeperSchema]
}

var _ ports.ZookeeperRepository = (*ZookeeperRepository)(nil)

func NewZookeeperRepository(path string) (*ZookeeperRepository, error) {
	records, err := openCollection(path, zookeepersKey, toZookeeperSchema, fromZookeeperSchema)
	if err != nil {
		return nil, err
	}

	return &ZookeeperRepository{records: records}, nil
}

func (r *ZookeeperRepository) GetByID(ctx context.Context, id string) (domain.Zookeeper, error) {
	if err := ctx.Err(); err != nil {
		return domain.Zookeeper{}, err
	}

	keeper, ok := r.records.get(id)
	if !ok {
		return domain.Zookeeper{}, domain.ErrZookeeperNotFound
	}

	return keeper, nil
}

func (r *ZookeeperRepository) List(ctx context.Context) ([]domain.Zookeeper, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.records.list(), nil
}

func (r *ZookeeperRepository) Create(ctx context.Context, keeper domain.Zookeeper) (domain.Zookeeper, error) {
	if err := ctx.Err(); err != nil {
		return domain.Zookeeper{}, err
	}

	return r.records.create(keeper)
}

// Open loads both collections from dataDir.
func Open(dataDir string) (*AnimalRepository, *ZookeeperRepository, error) {
	animals, err := NewAnimalRepository(filepath.Join(dataDir, AnimalsFile))
	if err != nil {
		return nil, nil, fmt.Errorf("open animal repository: %w", err)
	}

	keepers, err := NewZookeeperRepository(filepath.Join(dataDir, ZookeepersFile))
	if err != nil {
		return nil, nil, fmt.Errorf("open zookeeper repository: %w", err)
	}

	return animals, keepers, nil
}
