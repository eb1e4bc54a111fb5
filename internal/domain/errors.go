package domain

import "errors"

var (
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrZookeeperNotFound = errors.New("zookeeper not found")
	ErrInvalidRecord     = errors.New("invalid record")
)
