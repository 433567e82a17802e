package editor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"jsonedit/internal/errors"
)

// Pair is a single committed key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an insertion-ordered string mapping. The zero value is empty and
// ready to use. Set returns a new Pairs and leaves the receiver untouched,
// so a Pairs can be shared between states without aliasing.
type Pairs struct {
	entries []Pair
	index   map[string]int
}

// Len returns the number of pairs.
func (p Pairs) Len() int {
	return len(p.entries)
}

// Get returns the value stored under key.
func (p Pairs) Get(key string) (string, bool) {
	i, ok := p.index[key]
	if !ok {
		return "", false
	}
	return p.entries[i].Value, true
}

// Keys returns the keys in insertion order.
func (p Pairs) Keys() []string {
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the pairs in insertion order.
func (p Pairs) Entries() []Pair {
	out := make([]Pair, len(p.entries))
	copy(out, p.entries)
	return out
}

// Set stores value under key. An existing key keeps its position and has its
// value replaced; a new key is appended. The second result reports whether
// an existing value was overwritten.
func (p Pairs) Set(key, value string) (Pairs, bool) {
	entries := make([]Pair, len(p.entries), len(p.entries)+1)
	copy(entries, p.entries)

	if i, ok := p.index[key]; ok {
		entries[i].Value = value
		return Pairs{entries: entries, index: p.index}, true
	}

	index := make(map[string]int, len(p.index)+1)
	for k, v := range p.index {
		index[k] = v
	}
	index[key] = len(entries)
	entries = append(entries, Pair{Key: key, Value: value})
	return Pairs{entries: entries, index: index}, false
}

// ToJSON encodes the pairs as a single JSON object whose members appear in
// insertion order. Every value is a JSON string.
func (p Pairs) ToJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := encodeString(e.Key)
		if err != nil {
			return nil, errors.NewSerializationError("cannot encode key", e.Key, err)
		}
		v, err := encodeString(e.Value)
		if err != nil {
			return nil, errors.NewSerializationError("cannot encode value", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// encodeString quotes s as a JSON string without HTML escaping, so that
// values such as "<a&b>" come out as typed.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// PairsFromJSON decodes a flat JSON object of strings, keeping member order.
// It is the inverse of ToJSON.
func PairsFromJSON(data []byte) (Pairs, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var p Pairs

	tok, err := dec.Token()
	if err != nil {
		return Pairs{}, errors.Wrap(err, "cannot decode object")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return Pairs{}, errors.NewInputError("expected a JSON object", nil)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Pairs{}, errors.Wrap(err, "cannot decode key")
		}
		key, _ := tok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return Pairs{}, errors.NewInputError(fmt.Sprintf("value of %q is not a string", key), err)
		}
		p, _ = p.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return Pairs{}, errors.Wrap(err, "cannot decode object end")
	}
	return p, nil
}
