package printer

// Writer accumulates serialized output.
type Writer struct {
	buf []byte
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString appends a string to the output.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteByte appends a single byte to the output.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}
