package util

type IdFunc[T any, ID comparable] func(T) ID

// Set holds items by identity, as computed by the id function
type Set[T any, ID comparable] struct {
	m  map[ID]T
	id IdFunc[T, ID]
}

func NewSet[T any, ID comparable](id IdFunc[T, ID]) *Set[T, ID] {
	return &Set[T, ID]{
		m:  map[ID]T{},
		id: id,
	}
}

func NewSetFrom[T any, ID comparable](id IdFunc[T, ID], items []T) *Set[T, ID] {
	s := NewSet(id)
	s.AddFrom(items)
	return s
}

func (self *Set[T, ID]) AddFrom(items []T) {
	for _, item := range items {
		self.m[self.id(item)] = item
	}
}

func (self *Set[T, ID]) Has(item T) bool {
	_, ok := self.m[self.id(item)]
	return ok
}
