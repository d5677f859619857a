// Package reconcile compares two snapshots of a record set keyed by primary key.
//
// A snapshot is parsed from delimited text: one record per line, the first
// column is the primary key and the remaining columns are the record's fields.
// Reconciling an old snapshot against a new one classifies every key into
// exactly one of four sets:
//
//   - Matched: present in both, all compared fields equal.
//   - Missing: present in the old snapshot only.
//   - Corrupted: present in both, at least one compared field differs.
//   - NewlyCreated: present in the new snapshot only.
//
// Fields are compared over the old record's width. A field the new record does
// not have reads as absent and never equals a present value. Config.CompareTrailing
// additionally flags extra fields on the new side.
//
// # Spot checks
//
// SpotCheck draws one key per non-empty category and re-verifies it against the
// snapshots, giving a cheap sanity signal on top of the counts.
//
// # Usage Example
//
//	oldSnap, err := reconcile.ParseSnapshot(oldBlob, cfg)
//	newSnap, err := reconcile.ParseSnapshot(newBlob, cfg)
//	report, err := reconcile.Reconcile(oldSnap, newSnap, cfg)
//	if errors.Is(err, reconcile.ErrEmptyNew) {
//	    // nothing to compare against
//	}
//	checks := reconcile.SpotCheck(report, oldSnap, newSnap, rand.New(rand.NewSource(cfg.Seed)))
package reconcile
