package reconcile

import "sort"

// Reconcile classifies every key of the old and new snapshots.
//
// Every old record starts out missing. Each new record is then either newly
// created (key absent from old), corrupted (a compared field differs) or matched,
// and keys found in new are removed from the missing set. Fields are compared over
// the old record's width; cfg.CompareTrailing extends the comparison to extra new fields.
//
// A blank new snapshot is terminal and returns ErrEmptyNew. A blank old snapshot
// still yields a full report in which every new record is newly created.
func Reconcile(oldSnap, newSnap *Snapshot, cfg Config) (*Report, error) {
	if newSnap == nil || newSnap.Blank {
		return nil, ErrEmptyNew
	}
	if oldSnap == nil {
		oldSnap = &Snapshot{Records: map[string][]string{}, Blank: true}
	}

	report := &Report{
		OldBlank:     oldSnap.Blank,
		Matched:      []string{},
		Missing:      make(map[string][]string, len(oldSnap.Records)),
		Corrupted:    make(map[string]Corruption),
		NewlyCreated: make(map[string][]string),
	}

	for key, fields := range oldSnap.Records {
		report.Missing[key] = fields
	}

	for key, newFields := range newSnap.Records {
		oldFields, found := oldSnap.Records[key]
		if !found {
			report.NewlyCreated[key] = newFields
			continue
		}

		if mismatches := CompareFields(oldFields, newFields, cfg.CompareTrailing); len(mismatches) > 0 {
			report.Corrupted[key] = Corruption{
				Old:        oldFields,
				New:        newFields,
				Mismatches: mismatches,
			}
		} else {
			report.Matched = append(report.Matched, key)
		}

		delete(report.Missing, key)
	}

	sort.Strings(report.Matched)
	report.Summary = Summary{
		OldSize:      oldSnap.Size(),
		NewSize:      newSnap.Size(),
		Matched:      len(report.Matched),
		Missing:      len(report.Missing),
		Corrupted:    len(report.Corrupted),
		NewlyCreated: len(report.NewlyCreated),
	}

	return report, nil
}

// CompareFields returns the mismatches between an old and a new field sequence.
//
// Indices are walked over the old sequence. An index past the end of the new
// sequence reads as absent and never equals a present value. With trailing set,
// new fields beyond the old width are reported with an absent old side.
func CompareFields(oldFields, newFields []string, trailing bool) []FieldMismatch {
	var mismatches []FieldMismatch

	for i := range oldFields {
		if i >= len(newFields) {
			mismatches = append(mismatches, FieldMismatch{Index: i, Old: &oldFields[i]})
			continue
		}
		if oldFields[i] != newFields[i] {
			mismatches = append(mismatches, FieldMismatch{Index: i, Old: &oldFields[i], New: &newFields[i]})
		}
	}

	if trailing {
		for i := len(oldFields); i < len(newFields); i++ {
			mismatches = append(mismatches, FieldMismatch{Index: i, New: &newFields[i]})
		}
	}

	return mismatches
}
