// File: httpmsg/cursor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package httpmsg

// cursor walks a byte slice. Every read is checked against len(buf).
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.buf) }

// peek returns the current byte, or 0 at end of input.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.buf[c.pos]
}

// isSpace matches the C locale isspace set.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isNewline(b byte) bool { return b == '\r' || b == '\n' }

// hasPrefix reports whether lit starts at the cursor.
func (c *cursor) hasPrefix(lit string) bool {
	if len(c.buf)-c.pos < len(lit) {
		return false
	}
	return string(c.buf[c.pos:c.pos+len(lit)]) == lit
}

// match consumes lit if it starts at the cursor.
func (c *cursor) match(lit string) bool {
	if !c.hasPrefix(lit) {
		return false
	}
	c.pos += len(lit)
	return true
}

// skipBlanks consumes whitespace up to, not including, a line break.
func (c *cursor) skipBlanks() {
	for !c.eof() {
		b := c.buf[c.pos]
		if isNewline(b) || !isSpace(b) {
			return
		}
		c.pos++
	}
}

// word consumes bytes up to the next whitespace.
func (c *cursor) word() string {
	start := c.pos
	for !c.eof() && !isSpace(c.buf[c.pos]) {
		c.pos++
	}
	return string(c.buf[start:c.pos])
}

// newline consumes "\n" or "\r\n".
func (c *cursor) newline() bool {
	if c.match("\n") {
		return true
	}
	return c.match("\r\n")
}

// line consumes bytes up to a line break or end of input, leaving the break.
func (c *cursor) line() string {
	start := c.pos
	for !c.eof() && !isNewline(c.buf[c.pos]) {
		c.pos++
	}
	return string(c.buf[start:c.pos])
}
