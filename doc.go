// Package properties reads and writes the classic ".properties"
// configuration format while preserving the order in which keys were
// added.
//
// The motivation is byte-compatible interchange: documents written by
// this package parse identically in other implementations of the
// format, and iteration order is stable instead of randomized.
//
// # Basic Usage
//
//	p := properties.New()
//	p.Set("host", "db.internal")
//	p.Set("port", "5432")
//
//	err := properties.WriteFile("app.properties", p, "connection info")
//	// ...
//	p, err = properties.ReadFile("app.properties")
//	for k, v := range p.All() {
//	    // keys arrive in the order they were set
//	}
//
// # Format
//
// A document is a sequence of lines. Lines whose first non-blank char
// is '#' or '!' are comments. A line ending with an odd number of
// backslashes continues on the next line. In keys and values, '\uXXXX'
// escapes a UTF-16 code unit and a backslash escapes any other char.
// The first unescaped '=', ':' or whitespace separates key from value.
//
// # Encodings
//
// [Properties.Load] and [Properties.Store] use the classic interchange
// encoding: every byte is a Latin-1 code point and anything outside
// printable ASCII travels as '\uXXXX' escapes. [Properties.LoadText]
// and [Properties.StoreText] use plain UTF-8 and never escape to
// '\uXXXX'. Both read either form back.
//
// # Ordering
//
// By default iteration follows insertion order. [Builder] configures a
// comparator ordering instead, or turns off the date comment that
// Store writes:
//
//	p := properties.NewBuilder().
//	    WithOrdering(strings.Compare).
//	    WithSuppressDate(true).
//	    Build()
//
// # Other Formats
//
// [Properties.StoreXML] and [Properties.LoadXML] handle the XML flavor
// of the format. [MarshalSnapshot] and [UnmarshalSnapshot] save and
// restore an instance as versioned JSON. [MarshalTOON] exports the
// entries in the TOON text format. [ReadFile] and [WriteFile]
// additionally handle gzip, bzip2 (read only), zstd and brotli
// compressed files, picked by extension, and write atomically via
// temp-file-and-rename.
//
// Package remote fetches and stores documents over HTTP, S3 and SFTP.
package properties
