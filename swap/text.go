package swap

// Text is growable text backed by a byte buffer. The zero value is an empty
// Text ready to use.
type Text struct {
	buf []byte
}

func NewText(s string) *Text { return &Text{buf: []byte(s)} }

// WriteString appends s, growing the buffer as needed.
func (t *Text) WriteString(s string) { t.buf = append(t.buf, s...) }

func (t *Text) String() string { return string(t.buf) }
func (t *Text) Len() int       { return len(t.buf) }
func (t *Text) Cap() int       { return cap(t.buf) }

// Bytes returns the live buffer, not a copy. It is valid until the next
// write or exchange.
func (t *Text) Bytes() []byte { return t.buf }

// Exchange trades buffer ownership with other in O(1). No bytes move: each
// Text ends up holding the other's backing array and capacity.
func (t *Text) Exchange(other *Text) {
	t.buf, other.buf = other.buf, t.buf
}
