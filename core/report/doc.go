// Package report renders reconciliation results.
//
// The text format reproduces the console report line for line: the six counts,
// a blank line, then one spot-check line for missing, newly created and corrupted
// records. Details and per-record unified diffs are opt-in. The json and yaml
// formats encode the whole Result document instead.
//
//	res := &report.Result{Summary: rep.Summary, Report: rep, Checks: checks}
//	if err := report.Write(os.Stdout, res, report.Config{Format: "text"}); err != nil {
//	    return err
//	}
package report
