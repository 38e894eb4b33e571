//go:build !compact

package casestr

// storage is the internal representation of a String's text. The
// default representation is a plain Go string; see storage_compact.go
// for the alternative selected by the "compact" build tag.
type storage struct {
	s string
}

func makeStorage(s string) storage { return storage{s: s} }

func (st storage) str() string { return st.s }
