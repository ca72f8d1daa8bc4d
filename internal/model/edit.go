package model

// Edit is a byte-level replacement recorded against the original contents of
// a file. Start and End are inclusive offsets delimiting the value of a string
// literal, quotes excluded.
type Edit struct {
	Start int
	End   int
	Old   []byte
	New   []byte
}

// Len returns the number of original bytes covered by the edit.
func (e Edit) Len() int {
	return e.End - e.Start + 1
}
