package report

import (
	"time"

	"record-reconciler/core/reconcile"
)

// Result is the document describing one reconciliation run.
type Result struct {
	RunID     string `json:"run_id" yaml:"run_id"`
	OldSource string `json:"old_source" yaml:"old_source"`
	NewSource string `json:"new_source" yaml:"new_source"`

	Summary reconcile.Summary `json:"summary" yaml:"summary"`
	Report  *reconcile.Report `json:"report" yaml:"report"`
	Checks  []reconcile.Check `json:"checks" yaml:"checks"`

	// Warnings carries non-fatal findings such as duplicate keys or ragged rows.
	Warnings []string `json:"warnings" yaml:"warnings"`

	StartedAt time.Time `json:"started_at" yaml:"started_at"`
	Duration  string    `json:"duration" yaml:"duration"`
}

// Check returns the spot-check result for category, if present.
func (r *Result) Check(category reconcile.Category) (reconcile.Check, bool) {
	for _, c := range r.Checks {
		if c.Category == category {
			return c, true
		}
	}
	return reconcile.Check{}, false
}
