package domain

type Zookeeper struct {
	ID             string
	Name           string
	Age            int
	FavoriteAnimal string
}

func (z Zookeeper) RecordID() string {
	return z.ID
}

func (z Zookeeper) WithID(id string) Zookeeper {
	z.ID = id
	return z
}
