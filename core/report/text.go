package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"record-reconciler/core/reconcile"
)

// OldBlankMessage is printed first when the old snapshot had no content.
const OldBlankMessage = "Old database blank so all records in new database are newly created."

// TextFormatter prints the console report: counts, then one spot-check line per
// category, then the optional details and diffs.
type TextFormatter struct {
	Details bool
	Diff    bool
}

// Format implements Formatter.
func (f *TextFormatter) Format(w io.Writer, res *Result) error {
	bw := bufio.NewWriter(w)

	if res.Report != nil && res.Report.OldBlank {
		fmt.Fprintln(bw, OldBlankMessage)
	}

	s := res.Summary
	fmt.Fprintf(bw, "Old DB Size - %d\n", s.OldSize)
	fmt.Fprintf(bw, "New DB Size - %d\n", s.NewSize)
	fmt.Fprintf(bw, "Lines Matching - %d\n", s.Matched)
	fmt.Fprintf(bw, "Lines Missing - %d\n", s.Missing)
	fmt.Fprintf(bw, "Lines Corrupted - %d\n", s.Corrupted)
	fmt.Fprintf(bw, "Newly Created - %d\n\n", s.NewlyCreated)

	for _, line := range CheckLines(res.Checks) {
		fmt.Fprintln(bw, line)
	}

	if f.Details && res.Report != nil {
		sections := []struct {
			label string
			value map[string][]string
		}{
			{"Missing", res.Report.Missing},
			{"Corrupted", res.Report.CorruptedFields()},
			{"Created", res.Report.NewlyCreated},
		}
		for _, sec := range sections {
			if err := writeDetail(bw, sec.label, sec.value); err != nil {
				return err
			}
		}
	}

	if f.Diff && res.Report != nil {
		for _, key := range res.Report.CorruptedKeys() {
			fmt.Fprint(bw, Diff(key, res.Report.Corrupted[key]))
		}
	}

	return bw.Flush()
}

func writeDetail(w io.Writer, label string, records map[string][]string) error {
	if records == nil {
		records = map[string][]string{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s records: %w", label, err)
	}
	_, err = fmt.Fprintf(w, "%s - %s\n\n\n\n", label, data)
	return err
}

// CheckLines renders the spot-check results as console lines, in check order.
func CheckLines(checks []reconcile.Check) []string {
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		lines = append(lines, checkLine(c))
	}
	return lines
}

func checkLine(c reconcile.Check) string {
	switch c.Category {
	case reconcile.CategoryMissing:
		if !c.Sampled {
			return "Missing Test Passed - No records missing"
		}
		return fmt.Sprintf("Missing Test Passed - %t", c.Passed)
	case reconcile.CategoryNewlyCreated:
		if !c.Sampled {
			return "Newly Created Test Passed - No newly created records"
		}
		return fmt.Sprintf("Newly Created Test Passed - %t", c.Passed)
	case reconcile.CategoryCorrupted:
		if !c.Sampled {
			return "Corrupted Test Passed - No records corrupted"
		}
		if !c.Passed {
			return "Corrupted Test Failed"
		}
		return "Corrupted Test Passed - " + c.Detail
	default:
		return fmt.Sprintf("%s Test Passed - %t", c.Category, c.Passed)
	}
}
