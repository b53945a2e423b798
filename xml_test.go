package properties

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kjk/properties/assert"
	"github.com/kjk/properties/require"
)

func TestStoreXML(t *testing.T) {
	p := New()
	p.Set("b", "2")
	p.Set("a", "1")

	var buf bytes.Buffer
	err := p.StoreXML(&buf, "hdr")
	require.NoError(t, err)

	exp := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">
<properties>
  <comment>hdr</comment>
  <entry key="b">2</entry>
  <entry key="a">1</entry>
</properties>
`
	assert.Equal(t, exp, buf.String())
}

func TestStoreXMLNoComment(t *testing.T) {
	p := New()
	p.Set("a", "1")
	var buf bytes.Buffer
	err := p.StoreXML(&buf, "")
	require.NoError(t, err)
	assert.False(t, strings.Contains(buf.String(), "<comment>"))
}

func TestLoadXML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">
<properties>
<comment>ignored</comment>
<entry key="b">2</entry>
<entry key="a">1</entry>
<entry key="b">override</entry>
</properties>
`
	p := New()
	err := p.LoadXML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, p.Keys())
	assertEntry(t, p, "b", "override")
	assertEntry(t, p, "a", "1")
}

func TestXMLRoundTrip(t *testing.T) {
	p := New()
	p.Set("needs&escaping", "<value>")
	p.Set("unicode", "日 😀")
	p.Set("quote\"key", "'v'")

	var buf bytes.Buffer
	err := p.StoreXML(&buf, "round trip")
	require.NoError(t, err)

	p2 := New()
	err = p2.LoadXML(&buf)
	require.NoError(t, err)
	assert.True(t, p.Equal(p2), "%s vs %s", p, p2)
}

func TestLoadXMLBadDocument(t *testing.T) {
	p := New()
	err := p.LoadXML(strings.NewReader("not xml at all"))
	assert.Error(t, err)
}
