package reconcile

import (
	"fmt"
	"sort"
)

// Snapshot is the set of records parsed from one input source at one point in time.
type Snapshot struct {
	// Records maps each primary key to its ordered field values (key excluded).
	Records map[string][]string

	// Delimiter is the field separator the snapshot was parsed with.
	Delimiter string

	// Lines is the number of lines the input split into, blank ones included.
	Lines int

	// Rows is the number of non-blank lines processed.
	Rows int

	// Blank is true when the input had zero length.
	Blank bool

	// Duplicates lists keys that appeared more than once, in the order the
	// overwriting line was seen. The last occurrence wins.
	Duplicates []string

	// Ragged lists the 1-based line numbers whose token count differs from the first row.
	Ragged []int
}

// Size returns the line count minus one, the header-row approximation used for
// size reporting. It never returns a negative value.
func (s *Snapshot) Size() int {
	if s.Lines <= 1 {
		return 0
	}
	return s.Lines - 1
}

// Has reports whether key is present in the snapshot.
func (s *Snapshot) Has(key string) bool {
	_, ok := s.Records[key]
	return ok
}

// Keys returns the snapshot keys in sorted order.
func (s *Snapshot) Keys() []string {
	return sortedKeys(s.Records)
}

// Summary holds the six counts printed for every run.
type Summary struct {
	OldSize      int `json:"old_size" yaml:"old_size"`
	NewSize      int `json:"new_size" yaml:"new_size"`
	Matched      int `json:"matched" yaml:"matched"`
	Missing      int `json:"missing" yaml:"missing"`
	Corrupted    int `json:"corrupted" yaml:"corrupted"`
	NewlyCreated int `json:"newly_created" yaml:"newly_created"`
}

// FieldMismatch describes one differing field of a corrupted record.
// A nil side means the record has no field at Index.
type FieldMismatch struct {
	Index int     `json:"index" yaml:"index"`
	Old   *string `json:"old" yaml:"old"`
	New   *string `json:"new" yaml:"new"`
}

// String renders the mismatch as "field[1]: old=b new=c".
func (m FieldMismatch) String() string {
	return fmt.Sprintf("field[%d]: old=%s new=%s", m.Index, displayValue(m.Old), displayValue(m.New))
}

func displayValue(v *string) string {
	if v == nil {
		return "<absent>"
	}
	return *v
}

// Corruption holds both sides of a corrupted record and the fields that differ.
type Corruption struct {
	Old        []string        `json:"old" yaml:"old"`
	New        []string        `json:"new" yaml:"new"`
	Mismatches []FieldMismatch `json:"mismatches" yaml:"mismatches"`
}

// Report is the classification of every key found in either snapshot.
type Report struct {
	// OldBlank is set when the old input had zero length; every new record is then newly created.
	OldBlank bool `json:"old_blank" yaml:"old_blank"`

	Summary Summary `json:"summary" yaml:"summary"`

	// Matched holds the sorted keys present in both snapshots with identical compared fields.
	Matched []string `json:"matched" yaml:"matched"`

	// Missing maps keys found only in the old snapshot to their old fields.
	Missing map[string][]string `json:"missing" yaml:"missing"`

	// Corrupted maps keys present in both snapshots with at least one differing field.
	Corrupted map[string]Corruption `json:"corrupted" yaml:"corrupted"`

	// NewlyCreated maps keys found only in the new snapshot to their new fields.
	NewlyCreated map[string][]string `json:"newly_created" yaml:"newly_created"`
}

// MissingKeys returns the missing keys in sorted order.
func (r *Report) MissingKeys() []string {
	return sortedKeys(r.Missing)
}

// NewlyCreatedKeys returns the newly created keys in sorted order.
func (r *Report) NewlyCreatedKeys() []string {
	return sortedKeys(r.NewlyCreated)
}

// CorruptedKeys returns the corrupted keys in sorted order.
func (r *Report) CorruptedKeys() []string {
	return sortedKeys(r.Corrupted)
}

// CorruptedFields maps each corrupted key to its new-side fields, the shape
// the console details section prints.
func (r *Report) CorruptedFields() map[string][]string {
	out := make(map[string][]string, len(r.Corrupted))
	for key, c := range r.Corrupted {
		out[key] = c.New
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
