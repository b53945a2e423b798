package properties

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf16"
)

/*
The ".properties" text format is line-oriented: "key=value\n"

A natural line is terminated by \n, \r or \r\n. A natural line whose
first non-blank char is # or ! is a comment. A key/value line whose
backslash run before the terminator has odd length continues on the next
natural line, with that line's leading whitespace dropped. Blank lines
are skipped. The first unescaped =, : or whitespace ends the key.
*/

// lineReader assembles logical lines out of natural lines. next yields
// one char at a time; buf holds the line being assembled and is reused
// across calls.
type lineReader struct {
	next func() (rune, error)
	buf  []rune
}

// readLine returns the next logical line with comment lines, blank
// lines, terminators and continuation backslashes removed. io.EOF when
// input is exhausted. The returned slice is only valid until the next
// call.
func (lr *lineReader) readLine() ([]rune, error) {
	lr.buf = lr.buf[:0]
	skipWhiteSpace := true
	isCommentLine := false
	isNewLine := true
	appendedLineBegin := false
	precedingBackslash := false
	skipLF := false
	// set when a continuation is cut short by end of input; the
	// backslash is put back so the caller sees the line as written
	eofKeepsBackslash := false

	for {
		c, err := lr.next()
		if err == io.EOF {
			if eofKeepsBackslash {
				lr.buf = append(lr.buf, '\\')
			}
			if len(lr.buf) == 0 || isCommentLine {
				return nil, io.EOF
			}
			return lr.buf, nil
		}
		if err != nil {
			return nil, err
		}
		eofKeepsBackslash = false

		if skipLF {
			skipLF = false
			if c == '\n' {
				continue
			}
		}
		if skipWhiteSpace {
			if c == ' ' || c == '\t' || c == '\f' {
				continue
			}
			if !appendedLineBegin && (c == '\r' || c == '\n') {
				continue
			}
			skipWhiteSpace = false
			appendedLineBegin = false
		}
		if isNewLine {
			isNewLine = false
			if c == '#' || c == '!' {
				isCommentLine = true
				continue
			}
		}

		if c != '\n' && c != '\r' {
			lr.buf = append(lr.buf, c)
			precedingBackslash = c == '\\' && !precedingBackslash
			continue
		}

		// reached the end of a natural line
		if isCommentLine || len(lr.buf) == 0 {
			lr.buf = lr.buf[:0]
			isCommentLine = false
			isNewLine = true
			skipWhiteSpace = true
			continue
		}
		if !precedingBackslash {
			return lr.buf, nil
		}
		// odd backslash run: drop the backslash and join the next
		// natural line, skipping its leading whitespace
		lr.buf = lr.buf[:len(lr.buf)-1]
		skipWhiteSpace = true
		appendedLineBegin = true
		precedingBackslash = false
		eofKeepsBackslash = true
		if c == '\r' {
			skipLF = true
		}
	}
}

// Load reads the ".properties" format from r, treating every byte as a
// Latin-1 code point. This is the exact-compatibility path for files in
// the classic interchange encoding; non-ASCII text is expected to arrive
// as \uXXXX escapes. Entries read before a malformed escape stay set.
func (p *Properties) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	lr := &lineReader{
		next: func() (rune, error) {
			b, err := br.ReadByte()
			return rune(b), err
		},
	}
	return p.load(lr)
}

// LoadText is like Load but reads r as UTF-8 text.
func (p *Properties) LoadText(r io.Reader) error {
	br := bufio.NewReader(r)
	lr := &lineReader{
		next: func() (rune, error) {
			c, _, err := br.ReadRune()
			return c, err
		},
	}
	return p.load(lr)
}

// LoadString parses s as UTF-8 text.
func (p *Properties) LoadString(s string) error {
	return p.LoadText(strings.NewReader(s))
}

// LoadBytes parses d as Latin-1 bytes.
func (p *Properties) LoadBytes(d []byte) error {
	return p.Load(bytes.NewReader(d))
}

// load splits each logical line into key and value. The first unescaped
// =, : or whitespace ends the key; whitespace around at most one
// separator is dropped; the rest is the value. A line with no separator
// is a key with an empty value.
func (p *Properties) load(lr *lineReader) error {
	for {
		line, err := lr.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		limit := len(line)
		keyLen := 0
		valueStart := limit
		hasSep := false
		precedingBackslash := false
		for keyLen < limit {
			c := line[keyLen]
			if (c == '=' || c == ':') && !precedingBackslash {
				valueStart = keyLen + 1
				hasSep = true
				break
			}
			if (c == ' ' || c == '\t' || c == '\f') && !precedingBackslash {
				valueStart = keyLen + 1
				break
			}
			precedingBackslash = c == '\\' && !precedingBackslash
			keyLen++
		}
		for valueStart < limit {
			c := line[valueStart]
			if c != ' ' && c != '\t' && c != '\f' {
				if !hasSep && (c == '=' || c == ':') {
					hasSep = true
				} else {
					break
				}
			}
			valueStart++
		}

		key, err := decodeEscapes(line[:keyLen])
		if err != nil {
			return err
		}
		value, err := decodeEscapes(line[valueStart:])
		if err != nil {
			return err
		}
		p.vals.put(key, value)
	}
}

// decodeEscapes resolves backslash escapes: \uXXXX (exactly four hex
// digits), \t \n \r \f, and \<any other char> as that char. Two \uXXXX
// units forming a UTF-16 surrogate pair become one rune. A backslash as
// the very last char stands for itself.
func decodeEscapes(in []rune) (string, error) {
	// perf: most lines have no escapes
	if !slices.Contains(in, '\\') {
		return string(in), nil
	}
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(in) {
			out = append(out, '\\')
			break
		}
		c = in[i]
		if c != 'u' {
			switch c {
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			case 'n':
				c = '\n'
			case 'f':
				c = '\f'
			}
			out = append(out, c)
			continue
		}
		u1, err := parseUnicodeEscape(in, i+1)
		if err != nil {
			return "", err
		}
		i += 4
		if utf16.IsSurrogate(u1) && i+6 < len(in) && in[i+1] == '\\' && in[i+2] == 'u' {
			if u2, err2 := parseUnicodeEscape(in, i+3); err2 == nil {
				if r := utf16.DecodeRune(u1, u2); r != 0xFFFD {
					out = append(out, r)
					i += 6
					continue
				}
			}
		}
		out = append(out, u1)
	}
	return string(out), nil
}

// parseUnicodeEscape reads exactly four hex digits starting at in[off].
// in[off-2:off] is the \u that got us here, kept for error context.
func parseUnicodeEscape(in []rune, off int) (rune, error) {
	if off+4 > len(in) {
		return 0, fmt.Errorf("'%s': %w", string(in[off-2:]), ErrMalformedUnicode)
	}
	var v rune
	for _, c := range in[off : off+4] {
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 + c - '0'
		case c >= 'a' && c <= 'f':
			v = v<<4 + 10 + c - 'a'
		case c >= 'A' && c <= 'F':
			v = v<<4 + 10 + c - 'A'
		default:
			return 0, fmt.Errorf("'%s': %w", string(in[off-2:off+4]), ErrMalformedUnicode)
		}
	}
	return v, nil
}
