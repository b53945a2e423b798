package properties

import (
	"bufio"
	"io"
	"strings"
	"time"
	"unicode/utf16"
)

// dateLayout matches the classic timestamp comment, e.g.
// "#Mon Aug 24 17:21:42 CEST 2026"
const dateLayout = "Mon Jan 02 15:04:05 MST 2006"

// lineWriter receives whole output lines, terminator included. The
// bottom implementations encode, the optional wrapper above them filters.
type lineWriter interface {
	writeLine(line string) error
}

// latin1LineWriter writes every rune as a single Latin-1 byte. Escaping
// has already folded everything above 0xFF into \uXXXX sequences.
type latin1LineWriter struct {
	w *bufio.Writer
}

func (lw latin1LineWriter) writeLine(line string) error {
	for _, r := range line {
		if err := lw.w.WriteByte(byte(r)); err != nil {
			return err
		}
	}
	return nil
}

// utf8LineWriter writes lines as-is.
type utf8LineWriter struct {
	w *bufio.Writer
}

func (lw utf8LineWriter) writeLine(line string) error {
	_, err := lw.w.WriteString(line)
	return err
}

// dateSuppressingWriter holds back each completed "#" line until the
// next one completes. The timestamp line is always the last comment line
// written, so it is the one left holding when data starts and never
// reaches the output. Data lines pass through without flushing it.
type dateSuppressingWriter struct {
	w       lineWriter
	pending string
}

func (dw *dateSuppressingWriter) writeLine(line string) error {
	if strings.HasPrefix(line, "#") {
		prev := dw.pending
		dw.pending = line
		if prev == "" {
			return nil
		}
		return dw.w.writeLine(prev)
	}
	return dw.w.writeLine(line)
}

// Store writes the pairs in the classic interchange encoding: Latin-1
// bytes with chars outside 0x20..0x7E escaped as \uXXXX, one
// "key=value" line per pair in iteration order. A non-empty comment is
// written first as "#" lines, then a timestamp comment line unless the
// instance was built with WithSuppressDate. The output parses back via
// Load into an equal instance.
func (p *Properties) Store(w io.Writer, comment string) error {
	return p.storeLines(w, comment, true)
}

// StoreText is like Store but writes UTF-8 text and leaves chars outside
// ASCII unescaped. Load it back with LoadText.
func (p *Properties) StoreText(w io.Writer, comment string) error {
	return p.storeLines(w, comment, false)
}

func (p *Properties) storeLines(w io.Writer, comment string, escapeUnicode bool) error {
	bw := bufio.NewWriter(w)
	var sink lineWriter
	if escapeUnicode {
		sink = latin1LineWriter{w: bw}
	} else {
		sink = utf8LineWriter{w: bw}
	}
	if p.suppressDate {
		sink = &dateSuppressingWriter{w: sink}
	}
	if err := p.storeTo(sink, comment, escapeUnicode); err != nil {
		return err
	}
	return bw.Flush()
}

func (p *Properties) storeTo(sink lineWriter, comment string, escapeUnicode bool) error {
	if comment != "" {
		if err := writeComments(sink, comment); err != nil {
			return err
		}
	}
	err := sink.writeLine("#" + time.Now().Format(dateLayout) + "\n")
	if err != nil {
		return err
	}
	for _, e := range p.Entries() {
		// keys escape every space, values only a leading one
		k := escapeText(e.Key, true, escapeUnicode)
		v := escapeText(e.Value, false, escapeUnicode)
		if err = sink.writeLine(k + "=" + v + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// writeComments writes comment as "#" lines. Embedded \n, \r or \r\n
// starts a new line, prefixed with "#" unless the comment text itself
// continues with # or !. Chars above 0xFF become \uXXXX regardless of
// the data escaping mode.
func writeComments(sink lineWriter, comment string) error {
	var b strings.Builder
	b.WriteByte('#')
	runes := []rune(comment)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c > 0xff {
			for _, u := range utf16.Encode([]rune{c}) {
				writeUnicodeEscape(&b, u)
			}
			continue
		}
		if c == '\n' || c == '\r' {
			if c == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			b.WriteByte('\n')
			if err := sink.writeLine(b.String()); err != nil {
				return err
			}
			b.Reset()
			if i == len(runes)-1 || (runes[i+1] != '#' && runes[i+1] != '!') {
				b.WriteByte('#')
			}
			continue
		}
		b.WriteRune(c)
	}
	b.WriteByte('\n')
	return sink.writeLine(b.String())
}

const hexDigits = "0123456789ABCDEF"

func writeUnicodeEscape(b *strings.Builder, u uint16) {
	b.WriteByte('\\')
	b.WriteByte('u')
	b.WriteByte(hexDigits[u>>12&0xf])
	b.WriteByte(hexDigits[u>>8&0xf])
	b.WriteByte(hexDigits[u>>4&0xf])
	b.WriteByte(hexDigits[u&0xf])
}

// escapeText makes s safe as one side of a "key=value" line: backslash,
// the separators and comment markers, and control chars get backslash
// escapes. Keys escape every space (escapeSpace), values only a leading
// one. With escapeUnicode, chars outside 0x20..0x7E become \uXXXX,
// runes above 0xFFFF as a surrogate pair.
func escapeText(s string, escapeSpace, escapeUnicode bool) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for x, c := range []rune(s) {
		// the common case: printable ASCII above the specials
		if c > 61 && c < 127 {
			if c == '\\' {
				b.WriteString(`\\`)
				continue
			}
			b.WriteRune(c)
			continue
		}
		switch c {
		case ' ':
			if x == 0 || escapeSpace {
				b.WriteByte('\\')
			}
			b.WriteByte(' ')
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			if (c < 0x20 || c > 0x7e) && escapeUnicode {
				for _, u := range utf16.Encode([]rune{c}) {
					writeUnicodeEscape(&b, u)
				}
			} else {
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}
