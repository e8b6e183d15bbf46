package repository

import (
	"maps"
)

// Metadata holds versioning info for reconciling the cache with the file.
type Metadata struct {
	LastUpdate int64 `json:"lastUpdate"` // Unix timestamp in milliseconds
}

// SessionDocument is the persisted admin session state.
type SessionDocument struct {
	Metadata Metadata          `json:"metadata"`
	Values   map[string]string `json:"values" validate:"dive,keys,required,endkeys"`
}

// ApplyDefaults sets fallback values after decode.
func (d *SessionDocument) ApplyDefaults() {
	if d.Values == nil {
		d.Values = map[string]string{}
	}
}

// Clone returns a copy that shares no map with d.
func (d SessionDocument) Clone() SessionDocument {
	out := SessionDocument{Metadata: d.Metadata, Values: make(map[string]string, len(d.Values))}
	maps.Copy(out.Values, d.Values)
	return out
}

// AreDocumentsEqual compares two documents ignoring Metadata.
// A nil Values map equals an empty one.
func AreDocumentsEqual(a, b *SessionDocument) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	return maps.Equal(a.Values, b.Values)
}
