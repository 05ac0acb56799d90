package token

// Scanner facilitates construction of tokens from an in-memory byte slice.
// A Scanner is a plain value: copying it yields an independent cursor over the
// same source, which is how lookahead is implemented.
type Scanner struct {
	src   []byte
	start int // start of the current token
	pos   int // index of the next byte to be scanned
}

// NewScanner initializes and returns a new Scanner positioned at offset.  An
// offset outside of src is clamped to its bounds.
func NewScanner(src []byte, offset int) Scanner {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	return Scanner{src: src, start: offset, pos: offset}
}

// Offset returns the byte offset of the next byte to be scanned.
func (s *Scanner) Offset() int {
	return s.pos
}

// Start returns the byte offset at which the current token begins.
func (s *Scanner) Start() int {
	return s.start
}

// EOF returns true if every byte of the source has been scanned.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.src)
}

// Peek returns the next byte to be scanned.  Peek returns false if the source
// is exhausted.
func (s *Scanner) Peek() (byte, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the byte n positions beyond the next byte to be scanned.
func (s *Scanner) PeekAt(n int) (byte, bool) {
	i := s.pos + n
	if i < 0 || i >= len(s.src) {
		return 0, false
	}
	return s.src[i], true
}

// ScanByte includes the next byte in the current token and returns it.
func (s *Scanner) ScanByte() (byte, bool) {
	b, ok := s.Peek()
	if ok {
		s.pos++
	}
	return b, ok
}

// ScanWhile includes bytes in the current token for as long as fn returns
// true.  The number of bytes scanned is returned.
func (s *Scanner) ScanWhile(fn func(byte) bool) int {
	n := 0
	for {
		b, ok := s.Peek()
		if !ok || !fn(b) {
			return n
		}
		s.pos++
		n++
	}
}

// Rest returns the unscanned remainder of the source.
func (s *Scanner) Rest() []byte {
	return s.src[s.pos:]
}

// Bytes returns the bytes scanned since the last call to Ignore.
func (s *Scanner) Bytes() []byte {
	return s.src[s.start:s.pos]
}

// Text returns a string containing text scanned since the last call to
// Ignore.
func (s *Scanner) Text() string {
	return string(s.Bytes())
}

// Ignore causes the scanner to skip all text scanned since the last call to
// Ignore.
func (s *Scanner) Ignore() {
	s.start = s.pos
}
