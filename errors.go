package smalllist

import "fmt"

// ErrIndexOutOfRange indicates an index outside the accepted bound of an
// indexed operation. Get, Set and RemoveAt accept [0, count); Insert
// additionally accepts index == count as an append.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with count %d", e.Index, e.Count)
}

// ErrCopyOutOfRange indicates a CopyTo call whose offset and destination
// length do not fit the bound check against the source count.
type ErrCopyOutOfRange struct {
	Offset  int
	DestLen int
	Count   int
}

func (e *ErrCopyOutOfRange) Error() string {
	return fmt.Sprintf("copy out of range: offset %d, destination length %d, count %d", e.Offset, e.DestLen, e.Count)
}
