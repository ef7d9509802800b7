package goshard

import "github.com/goccy/go-json"

// MarshalJSON encodes the shard's remaining range as a plain JSON array, so a
// shard serializes exactly like the slice it views. Panics if the shard has
// already been released or consumed, like every other shard operation.
func (s *Shard[T]) MarshalJSON() ([]byte, error) {
	s.ensureLive()
	if s.len == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes a JSON array into the shard, replacing it with a
// freshly wrapped backing array of its own.
func (s *Shard[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	*s = *Wrap(elems)
	return nil
}
