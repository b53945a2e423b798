package properties

import (
	"encoding/xml"
	"io"
)

// the document shape of the XML properties flavor:
//
//	<properties>
//	  <comment>backup</comment>
//	  <entry key="a">1</entry>
//	</properties>
type xmlProperties struct {
	XMLName xml.Name   `xml:"properties"`
	Comment string     `xml:"comment,omitempty"`
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

const xmlDocType = `<!DOCTYPE properties SYSTEM "http://java.sun.com/dtd/properties.dtd">` + "\n"

// StoreXML writes the pairs as an XML properties document, UTF-8, in
// iteration order.
func (p *Properties) StoreXML(w io.Writer, comment string) error {
	doc := xmlProperties{Comment: comment}
	for _, e := range p.Entries() {
		doc.Entries = append(doc.Entries, xmlEntry{Key: e.Key, Value: e.Value})
	}
	if _, err := io.WriteString(w, xml.Header+xmlDocType); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// LoadXML reads pairs from an XML properties document in document order.
// A comment element is ignored.
func (p *Properties) LoadXML(r io.Reader) error {
	var doc xmlProperties
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return err
	}
	for _, e := range doc.Entries {
		p.vals.put(e.Key, e.Value)
	}
	return nil
}
