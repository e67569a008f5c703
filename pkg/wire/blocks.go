package wire

import "bytes"

// Encoder is implemented by every generated message.
type Encoder interface {
	Encode(w *Writer) error
}

// Marshal encodes e, identifier bytes included, into a new buffer.
func Marshal(e Encoder) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(NewWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFixed writes every element of src in order, with no count prefix.
func WriteFixed[T any](w *Writer, src []T, write func(*Writer, *T)) {
	for i := range src {
		write(w, &src[i])
	}
}

// WriteVariable writes the one byte count of src followed by its elements.
func WriteVariable[T any](w *Writer, src []T, write func(*Writer, *T)) {
	w.Count(len(src))
	if w.err != nil {
		return
	}
	WriteFixed(w, src, write)
}

// ReadFixed decodes len(dst) consecutive elements into dst.
func ReadFixed[T any](r *Reader, dst []T, read func(*Reader) (T, error)) error {
	for i := range dst {
		v, err := read(r)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadVariable reads a one byte count and that many elements. A count of
// zero decodes as nil.
func ReadVariable[T any](r *Reader, read func(*Reader) (T, error)) ([]T, error) {
	n := r.Count()
	if err := r.Error(); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]T, n)
	if err := ReadFixed(r, out, read); err != nil {
		return nil, err
	}
	return out, nil
}
