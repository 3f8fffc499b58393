package util

// OrderedMap implements a simple map data structure that maintains its insertion order.
type OrderedMap[K comparable, V any] struct {
	data map[K]V
	keys []K
}

func NewOrderedMapOfSize[K comparable, V any](n int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V, n),
		keys: make([]K, 0, n),
	}
}

// Insert adds the key at the end of the order, or overwrites the value of an
// existing key in place
func (self *OrderedMap[K, V]) Insert(key K, val V) *OrderedMap[K, V] {
	if _, ok := self.data[key]; !ok {
		self.keys = append(self.keys, key)
	}
	self.data[key] = val
	return self
}

// InsertIfAbsent adds the key only if it is not present yet, and reports whether it did
func (self *OrderedMap[K, V]) InsertIfAbsent(key K, val V) bool {
	if self.Has(key) {
		return false
	}
	self.Insert(key, val)
	return true
}

func (self *OrderedMap[K, V]) Get(key K) V {
	return self.data[key]
}

func (self *OrderedMap[K, V]) Has(key K) bool {
	_, ok := self.data[key]
	return ok
}

func (self *OrderedMap[K, V]) ForEach(f func(i int, key K, val V)) {
	for i, key := range self.keys {
		f(i, key, self.data[key])
	}
}
