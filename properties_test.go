package properties

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kjk/properties/assert"
	"github.com/kjk/properties/require"
)

func TestSetGetRemove(t *testing.T) {
	p := New()
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Size())

	prev, existed := p.Set("a", "1")
	assert.False(t, existed)
	assert.Equal(t, "", prev)

	prev, existed = p.Set("a", "2")
	assert.True(t, existed)
	assert.Equal(t, "1", prev)

	v, ok := p.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "2", v)
	assert.True(t, p.Has("a"))
	assert.False(t, p.Has("missing"))

	assert.Equal(t, "2", p.GetDefault("a", "def"))
	assert.Equal(t, "def", p.GetDefault("missing", "def"))

	prev, existed = p.Remove("a")
	assert.True(t, existed)
	assert.Equal(t, "2", prev)
	assert.False(t, p.Has("a"))
	assert.True(t, p.IsEmpty())

	_, existed = p.Remove("a")
	assert.False(t, existed)
}

func TestEmptyKeyAndValue(t *testing.T) {
	p := New()
	p.Set("", "")
	assert.True(t, p.Has(""))
	v, ok := p.Get("")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, 1, p.Size())
}

func TestInsertionOrder(t *testing.T) {
	p := New()
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("c", "3")
	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())

	// overwriting keeps the position
	p.Set("a", "10")
	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())

	// removing and re-adding moves to the end
	p.Remove("a")
	assert.Equal(t, []string{"b", "c"}, p.Keys())
	p.Set("a", "1")
	assert.Equal(t, []string{"b", "c", "a"}, p.Keys())
}

func TestComparatorOrder(t *testing.T) {
	reverse := func(a, b string) int {
		return strings.Compare(b, a)
	}
	p := NewBuilder().WithOrdering(reverse).Build()
	p.Set("a", "1")
	p.Set("c", "3")
	p.Set("b", "2")
	assert.Equal(t, []string{"c", "b", "a"}, p.Keys())

	p.Remove("b")
	assert.Equal(t, []string{"c", "a"}, p.Keys())
	p.Set("b", "2")
	assert.Equal(t, []string{"c", "b", "a"}, p.Keys())
}

func TestEntries(t *testing.T) {
	p := New()
	p.Set("b", "2")
	p.Set("a", "1")
	exp := []Entry{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}
	assert.Equal(t, exp, p.Entries())
}

func TestAll(t *testing.T) {
	p := New()
	p.Set("b", "2")
	p.Set("a", "1")
	p.Set("c", "3")

	var keys []string
	for k, v := range p.All() {
		keys = append(keys, k+"="+v)
	}
	assert.Equal(t, []string{"b=2", "a=1", "c=3"}, keys)

	// breaking early stops the iteration
	n := 0
	for range p.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestKeysIsACopy(t *testing.T) {
	p := New()
	p.Set("a", "1")
	p.Set("b", "2")
	keys := p.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Keys())
}

func TestEqual(t *testing.T) {
	a := New()
	a.Set("x", "1")
	a.Set("y", "2")

	b := New()
	b.Set("x", "1")
	b.Set("y", "2")
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	// same pairs in a different order are not equal
	c := New()
	c.Set("y", "2")
	c.Set("x", "1")
	assert.False(t, a.Equal(c))

	// different value
	d := New()
	d.Set("x", "1")
	d.Set("y", "other")
	assert.False(t, a.Equal(d))

	// bulk load and manual sets compare equal
	loaded := loadString(t, "x=1\ny=2")
	assert.True(t, a.Equal(loaded))

	// ordering mode doesn't matter, the sequence does
	sorted := NewBuilder().WithOrdering(strings.Compare).Build()
	sorted.Set("y", "2")
	sorted.Set("x", "1")
	assert.True(t, a.Equal(sorted))
}

func TestCopy(t *testing.T) {
	p := NewBuilder().WithSuppressDate(true).Build()
	p.Set("b", "2")
	p.Set("a", "1")

	c := Copy(p)
	assert.True(t, p.Equal(c))
	assert.Equal(t, []string{"b", "a"}, c.Keys())

	// the copy keeps store behavior
	c.Set("k", "v")
	out := storeString(t, c, "")
	assert.Equal(t, "b=2\na=1\nk=v\n", out)

	// and is independent
	assert.False(t, p.Has("k"))

	// comparator mode carries over
	sorted := NewBuilder().WithOrdering(strings.Compare).Build()
	sorted.Set("c", "3")
	sorted.Set("a", "1")
	sc := Copy(sorted)
	sc.Set("b", "2")
	assert.Equal(t, []string{"a", "b", "c"}, sc.Keys())
}

func TestToMap(t *testing.T) {
	p := New()
	p.Set("a", "1")
	p.Set("b", "2")
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, p.ToMap())
}

func TestString(t *testing.T) {
	p := New()
	assert.Equal(t, "{}", p.String())
	p.Set("a", "1")
	p.Set("b", "2")
	assert.Equal(t, "{a=1, b=2}", p.String())
}

func TestList(t *testing.T) {
	p := New()
	p.Set("short", "value")
	p.Set("long", strings.Repeat("x", 50))
	// truncation counts runes, a byte cut would split "é"
	p.Set("wide", strings.Repeat("é", 50))
	// 42 bytes but only 14 runes, printed whole
	p.Set("euros", strings.Repeat("€", 14))

	var buf bytes.Buffer
	p.List(&buf)
	exp := "-- listing properties --\n" +
		"short=value\n" +
		"long=" + strings.Repeat("x", 37) + "...\n" +
		"wide=" + strings.Repeat("é", 37) + "...\n" +
		"euros=" + strings.Repeat("€", 14) + "\n"
	assert.Equal(t, exp, buf.String())
}

func TestBuilderDefaults(t *testing.T) {
	p := NewBuilder().Build()
	p.Set("k", "v")
	require.Equal(t, []string{"k"}, p.Keys())
	out := storeString(t, p, "")
	// the date line is present by default
	assert.True(t, strings.HasPrefix(out, "#"))
}
