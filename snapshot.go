package properties

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

const snapshotVersion = 1

const (
	orderingInsertion = "insertion"
	orderingCustom    = "custom"
)

// snapshot is the stable on-disk shape of an instance: construction
// flags plus entries in iteration order.
type snapshot struct {
	Version      int     `json:"version"`
	Ordering     string  `json:"ordering"`
	SuppressDate bool    `json:"suppressDate"`
	Entries      []Entry `json:"entries"`
}

// MarshalSnapshot serializes p as versioned, human-readable JSON for
// restoring with UnmarshalSnapshot. A comparator ordering is recorded as
// a marker only; comparators are code and don't travel with the data.
func MarshalSnapshot(p *Properties) ([]byte, error) {
	s := snapshot{
		Version:      snapshotVersion,
		Ordering:     orderingInsertion,
		SuppressDate: p.suppressDate,
		Entries:      p.Entries(),
	}
	if p.cmp != nil {
		s.Ordering = orderingCustom
	}
	d, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(d), nil
}

// UnmarshalSnapshot restores an instance serialized by MarshalSnapshot.
// The result iterates in the recorded order; a "custom" snapshot comes
// back insertion-ordered and callers who want the comparator behavior
// back rebuild via Builder.
func UnmarshalSnapshot(d []byte) (*Properties, error) {
	if len(d) == 0 {
		return nil, ErrNoSnapshotData
	}
	var s snapshot
	if err := json.Unmarshal(d, &s); err != nil {
		return nil, err
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	p := NewBuilder().WithSuppressDate(s.SuppressDate).Build()
	for _, e := range s.Entries {
		p.Set(e.Key, e.Value)
	}
	return p, nil
}
