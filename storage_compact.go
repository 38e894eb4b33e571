//go:build compact

package casestr

// inlineCap is the longest text stored without a heap allocation.
const inlineCap = 23

// storage is the small-string representation of a String's text,
// selected by the "compact" build tag: text of at most inlineCap bytes
// lives inline in the value, longer text spills to the heap. External
// behavior is identical to the default representation.
type storage struct {
	long *string
	buf  [inlineCap]byte
	n    uint8
}

func makeStorage(s string) storage {
	var st storage
	if len(s) <= inlineCap {
		st.n = uint8(copy(st.buf[:], s))
	} else {
		st.long = &s
	}
	return st
}

func (st storage) str() string {
	if st.long != nil {
		return *st.long
	}
	// Copy out so callers never alias the inline buffer.
	return string(st.buf[:st.n])
}
