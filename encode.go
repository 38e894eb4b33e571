package casestr

import "encoding/json"

// MarshalText implements [encoding.TextMarshaler]. The original casing
// is encoded, never the folded form.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.v.str()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *String) UnmarshalText(b []byte) error {
	*s = FromBytes(b)
	return nil
}

// MarshalJSON implements [json.Marshaler]. The original casing is
// encoded, never the folded form.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.v.str())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *String) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = New(str)
	return nil
}
