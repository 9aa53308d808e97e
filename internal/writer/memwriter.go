package writer

// MemWriter captures file bytes in memory.
type MemWriter struct {
	Buf    []byte
	Writes int
}

// WriteFile stores a copy of data.
func (w *MemWriter) WriteFile(data []byte) error {
	w.Buf = append(w.Buf[:0], data...)
	w.Writes++
	return nil
}
