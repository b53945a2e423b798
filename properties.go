package properties

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Entry is a single key/value pair. Empty strings are valid keys and
// valid values.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Properties is a set of key/value string pairs with deterministic
// iteration order: insertion order by default, or sorted by a comparator
// given at construction. Keys are unique, last write wins.
//
// Not safe for concurrent mutation. Callers that share an instance
// across goroutines synchronize access themselves.
type Properties struct {
	vals keyValueMap
	// nil for insertion order
	cmp          func(a, b string) int
	suppressDate bool
}

// New returns an empty Properties iterating in insertion order.
func New() *Properties {
	return &Properties{vals: newLinkedMap()}
}

// Builder creates Properties instances with non-default ordering or
// store behavior.
type Builder struct {
	cmp          func(a, b string) int
	suppressDate bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithOrdering makes built instances iterate keys sorted by cmp.
// cmp must be a total order: cmp(a, b) == 0 only when a == b.
func (b *Builder) WithOrdering(cmp func(a, b string) int) *Builder {
	b.cmp = cmp
	return b
}

// WithSuppressDate controls whether Store writes the timestamp comment
// line. Default is to write it.
func (b *Builder) WithSuppressDate(suppress bool) *Builder {
	b.suppressDate = suppress
	return b
}

func (b *Builder) Build() *Properties {
	return newProperties(b.cmp, b.suppressDate)
}

func newProperties(cmp func(a, b string) int, suppressDate bool) *Properties {
	p := &Properties{cmp: cmp, suppressDate: suppressDate}
	if cmp != nil {
		p.vals = newSortedMap(cmp)
	} else {
		p.vals = newLinkedMap()
	}
	return p
}

// Copy returns a new instance with the same pairs, ordering and store
// behavior as src. A comparator is shared, not copied.
func Copy(src *Properties) *Properties {
	p := newProperties(src.cmp, src.suppressDate)
	for _, e := range src.Entries() {
		p.vals.put(e.Key, e.Value)
	}
	return p
}

// Get returns the value for key and whether the key is present.
func (p *Properties) Get(key string) (string, bool) {
	return p.vals.get(key)
}

// GetDefault returns the value for key, or def if the key is absent.
func (p *Properties) GetDefault(key string, def string) string {
	if v, ok := p.vals.get(key); ok {
		return v
	}
	return def
}

// Set stores value under key and returns the value it replaced, if any.
// A new key goes to the end of insertion order.
func (p *Properties) Set(key, value string) (prev string, existed bool) {
	return p.vals.put(key, value)
}

// Remove deletes key and returns the removed value, if any.
func (p *Properties) Remove(key string) (prev string, existed bool) {
	return p.vals.remove(key)
}

// Has reports whether key is present.
func (p *Properties) Has(key string) bool {
	_, ok := p.vals.get(key)
	return ok
}

func (p *Properties) Size() int {
	return p.vals.len()
}

func (p *Properties) IsEmpty() bool {
	return p.vals.len() == 0
}

// Keys returns the keys in iteration order.
func (p *Properties) Keys() []string {
	return p.vals.keys()
}

// Entries returns the pairs in iteration order.
func (p *Properties) Entries() []Entry {
	keys := p.vals.keys()
	res := make([]Entry, len(keys))
	for i, k := range keys {
		v, _ := p.vals.get(k)
		res[i] = Entry{Key: k, Value: v}
	}
	return res
}

// All iterates the pairs in iteration order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range p.vals.keys() {
			v, _ := p.vals.get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

// ToMap copies the pairs into a plain map, losing order.
func (p *Properties) ToMap() map[string]string {
	m := make(map[string]string, p.vals.len())
	for k, v := range p.All() {
		m[k] = v
	}
	return m
}

// Equal reports whether p and other hold the same pairs in the same
// iteration order. Ordering mode and store behavior don't participate.
func (p *Properties) Equal(other *Properties) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	a, b := p.Entries(), other.Entries()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats the pairs map-style, e.g. {a=1, b=2}.
func (p *Properties) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range p.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Key)
		sb.WriteByte('=')
		sb.WriteString(e.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// List writes a debug listing of the pairs to w, one per line, values
// longer than 40 chars truncated with "...".
func (p *Properties) List(w io.Writer) {
	fmt.Fprintln(w, "-- listing properties --")
	for _, e := range p.Entries() {
		v := e.Value
		// byte length bounds the rune count, convert only when over
		if len(v) > 40 {
			if r := []rune(v); len(r) > 40 {
				v = string(r[:37]) + "..."
			}
		}
		fmt.Fprintf(w, "%s=%s\n", e.Key, v)
	}
}
