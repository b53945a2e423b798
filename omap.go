package properties

import "slices"

// keyValueMap is the storage behind Properties. The two implementations
// differ only in iteration order; everything above them talks to this
// interface.
type keyValueMap interface {
	get(key string) (string, bool)
	put(key, value string) (prev string, existed bool)
	remove(key string) (prev string, existed bool)
	keys() []string
	len() int
}

// linkedMap iterates keys in first-insertion order. Removing a key and
// setting it again moves it to the end.
type linkedMap struct {
	m     map[string]string
	order []string
}

func newLinkedMap() *linkedMap {
	return &linkedMap{m: map[string]string{}}
}

func (lm *linkedMap) get(key string) (string, bool) {
	v, ok := lm.m[key]
	return v, ok
}

func (lm *linkedMap) put(key, value string) (string, bool) {
	prev, ok := lm.m[key]
	if !ok {
		lm.order = append(lm.order, key)
	}
	lm.m[key] = value
	return prev, ok
}

func (lm *linkedMap) remove(key string) (string, bool) {
	prev, ok := lm.m[key]
	if !ok {
		return "", false
	}
	delete(lm.m, key)
	if i := slices.Index(lm.order, key); i >= 0 {
		lm.order = slices.Delete(lm.order, i, i+1)
	}
	return prev, true
}

func (lm *linkedMap) keys() []string {
	return slices.Clone(lm.order)
}

func (lm *linkedMap) len() int {
	return len(lm.m)
}

// sortedMap iterates keys sorted by cmp. cmp must be a total order:
// cmp(a, b) == 0 only when a == b.
type sortedMap struct {
	m     map[string]string
	order []string
	cmp   func(a, b string) int
}

func newSortedMap(cmp func(a, b string) int) *sortedMap {
	return &sortedMap{m: map[string]string{}, cmp: cmp}
}

func (sm *sortedMap) get(key string) (string, bool) {
	v, ok := sm.m[key]
	return v, ok
}

func (sm *sortedMap) put(key, value string) (string, bool) {
	prev, ok := sm.m[key]
	if !ok {
		i, _ := slices.BinarySearchFunc(sm.order, key, sm.cmp)
		sm.order = slices.Insert(sm.order, i, key)
	}
	sm.m[key] = value
	return prev, ok
}

func (sm *sortedMap) remove(key string) (string, bool) {
	prev, ok := sm.m[key]
	if !ok {
		return "", false
	}
	delete(sm.m, key)
	i, found := slices.BinarySearchFunc(sm.order, key, sm.cmp)
	panicIf(!found, "key '%s' in map but not in order", key)
	sm.order = slices.Delete(sm.order, i, i+1)
	return prev, true
}

func (sm *sortedMap) keys() []string {
	return slices.Clone(sm.order)
}

func (sm *sortedMap) len() int {
	return len(sm.m)
}
