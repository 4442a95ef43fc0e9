package timetable

import (
	"bytes"
	"encoding/json"
)

// Entry is one item from an upstream collection, tagged with the key it was
// stored under when the source was a keyed map. For the period maps the key
// is the period label and carries real meaning; for arrays it is empty.
type Entry struct {
	Key   string
	Value json.RawMessage
}

// Collect normalizes an upstream collection that arrives as either a JSON
// array or a keyed object (the same document uses both shapes across portal
// deployments) into one ordered slice of entries. Object entries keep their
// source order. Anything else, including null and the literal false the
// portal uses for "no data", yields nil.
func Collect(raw json.RawMessage) []Entry {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil
		}
		entries := make([]Entry, 0, len(items))
		for _, item := range items {
			entries = append(entries, Entry{Value: item})
		}
		return entries
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		if _, err := dec.Token(); err != nil { // opening brace
			return nil
		}
		var entries []Entry
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil
			}
			key, _ := keyTok.(string)
			var val json.RawMessage
			if err := dec.Decode(&val); err != nil {
				return nil
			}
			entries = append(entries, Entry{Key: key, Value: val})
		}
		return entries
	default:
		return nil
	}
}
