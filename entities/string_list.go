package entities

import "encoding/json"

// EncodeStringList serializes an ordered string list for storage in a
// text column.
func EncodeStringList(values []string) string {
	raw, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// DecodeStringList is the inverse. Unreadable columns decode to an empty
// list instead of failing the read.
func DecodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}
