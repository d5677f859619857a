package report

import (
	"fmt"
	"strings"

	"record-reconciler/core/reconcile"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff of one corrupted record, one field per line.
// Field lines are prefixed with their index so shifted values stay readable.
func Diff(key string, c reconcile.Corruption) string {
	u := difflib.UnifiedDiff{
		A:        fieldLines(c.Old),
		B:        fieldLines(c.New),
		FromFile: "old/" + key,
		ToFile:   "new/" + key,
		Context:  1,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil || s == "" {
		return fmt.Sprintf("--- old/%s\n+++ new/%s\n(no line differences)\n", key, key)
	}
	return s
}

func fieldLines(fields []string) []string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = fmt.Sprintf("[%d] %s\n", i, strings.TrimRight(f, "\n"))
	}
	return lines
}
