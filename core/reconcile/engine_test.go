package reconcile

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) *Snapshot {
	t.Helper()
	snap, err := ParseSnapshot(strings.Join(lines, "\n"), Config{})
	require.NoError(t, err)
	return snap
}

func strPtr(s string) *string { return &s }

// TestReconcile_Scenario tests the matched/missing/newly created split.
func TestReconcile_Scenario(t *testing.T) {
	oldSnap := mustParse(t, "K1,a,b", "K2,x,y")
	newSnap := mustParse(t, "K1,a,b", "K3,p,q")

	report, err := Reconcile(oldSnap, newSnap, Config{})
	require.NoError(t, err)

	assert.Equal(t, []string{"K1"}, report.Matched)
	assert.Equal(t, map[string][]string{"K2": {"x", "y"}}, report.Missing)
	assert.Equal(t, map[string][]string{"K3": {"p", "q"}}, report.NewlyCreated)
	assert.Empty(t, report.Corrupted)
	assert.False(t, report.OldBlank)

	assert.Equal(t, Summary{OldSize: 1, NewSize: 1, Matched: 1, Missing: 1, Corrupted: 0, NewlyCreated: 1}, report.Summary)
}

// TestReconcile_Corrupted tests single-field corruption detection.
func TestReconcile_Corrupted(t *testing.T) {
	report, err := Reconcile(mustParse(t, "K1,a,b"), mustParse(t, "K1,a,c"), Config{})
	require.NoError(t, err)

	require.Contains(t, report.Corrupted, "K1")
	c := report.Corrupted["K1"]
	assert.Equal(t, []string{"a", "b"}, c.Old)
	assert.Equal(t, []string{"a", "c"}, c.New)
	assert.Equal(t, []FieldMismatch{{Index: 1, Old: strPtr("b"), New: strPtr("c")}}, c.Mismatches)
	assert.Equal(t, "field[1]: old=b new=c", c.Mismatches[0].String())
	assert.Empty(t, report.Matched)
	assert.Empty(t, report.Missing)
}

// TestReconcile_ShorterNewRecord tests that an absent new field never matches.
func TestReconcile_ShorterNewRecord(t *testing.T) {
	tests := []struct {
		name    string
		oldLine string
		newLine string
	}{
		{"missing last field", "K1,a,b", "K1,a"},
		{"missing empty field", "K1,a,", "K1,a"},
		{"no fields at all", "K1,", "K1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Reconcile(mustParse(t, tt.oldLine), mustParse(t, tt.newLine), Config{})
			require.NoError(t, err)

			require.Contains(t, report.Corrupted, "K1")
			last := report.Corrupted["K1"].Mismatches[len(report.Corrupted["K1"].Mismatches)-1]
			assert.Nil(t, last.New)
			assert.NotNil(t, last.Old)
			assert.Contains(t, last.String(), "new=<absent>")
		})
	}
}

// TestReconcile_ExtraNewFields tests the truncated comparison and the trailing option.
func TestReconcile_ExtraNewFields(t *testing.T) {
	oldSnap := mustParse(t, "K1,a")
	newSnap := mustParse(t, "K1,a,extra")

	report, err := Reconcile(oldSnap, newSnap, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"K1"}, report.Matched)
	assert.Empty(t, report.Corrupted)

	report, err = Reconcile(oldSnap, newSnap, Config{CompareTrailing: true})
	require.NoError(t, err)
	assert.Empty(t, report.Matched)
	require.Contains(t, report.Corrupted, "K1")
	assert.Equal(t, []FieldMismatch{{Index: 1, New: strPtr("extra")}}, report.Corrupted["K1"].Mismatches)
	assert.Equal(t, "field[1]: old=<absent> new=extra", report.Corrupted["K1"].Mismatches[0].String())
}

// TestReconcile_EmptyNew tests that a blank new snapshot is terminal.
func TestReconcile_EmptyNew(t *testing.T) {
	report, err := Reconcile(mustParse(t, "K1,a"), mustParse(t), Config{})
	assert.ErrorIs(t, err, ErrEmptyNew)
	assert.Nil(t, report)

	report, err = Reconcile(mustParse(t, "K1,a"), nil, Config{})
	assert.ErrorIs(t, err, ErrEmptyNew)
	assert.Nil(t, report)
}

// TestReconcile_EmptyOld tests that a blank old snapshot classifies everything as newly created.
func TestReconcile_EmptyOld(t *testing.T) {
	newSnap := mustParse(t, "K1,a", "K2,b", "")

	for _, oldSnap := range []*Snapshot{mustParse(t), nil} {
		report, err := Reconcile(oldSnap, newSnap, Config{})
		require.NoError(t, err)

		assert.True(t, report.OldBlank)
		assert.Equal(t, []string{"K1", "K2"}, report.NewlyCreatedKeys())
		assert.Empty(t, report.Missing)
		assert.Empty(t, report.Corrupted)
		assert.Empty(t, report.Matched)
		assert.Equal(t, 0, report.Summary.OldSize)
		assert.Equal(t, 2, report.Summary.NewSize)
	}
}

// TestReconcile_Idempotence tests reconciling a snapshot against itself.
func TestReconcile_Idempotence(t *testing.T) {
	snap := mustParse(t, "K1,a,b", "K2,x,y", "K3", "K4,,")

	report, err := Reconcile(snap, snap, Config{CompareTrailing: true})
	require.NoError(t, err)

	assert.Empty(t, report.Missing)
	assert.Empty(t, report.Corrupted)
	assert.Empty(t, report.NewlyCreated)
	assert.Len(t, report.Matched, len(snap.Records))
}

// TestReconcile_Partition tests the partition invariants over random snapshots.
func TestReconcile_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	randomSnapshot := func() *Snapshot {
		var lines []string
		for i := 0; i < 40; i++ {
			width := 1 + rng.Intn(3)
			fields := make([]string, 0, width)
			fields = append(fields, fmt.Sprintf("K%d", rng.Intn(30)))
			for f := 1; f < width; f++ {
				fields = append(fields, fmt.Sprintf("v%d", rng.Intn(2)))
			}
			lines = append(lines, strings.Join(fields, ","))
		}
		return mustParse(t, lines...)
	}

	for round := 0; round < 25; round++ {
		oldSnap := randomSnapshot()
		newSnap := randomSnapshot()

		report, err := Reconcile(oldSnap, newSnap, Config{})
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, key := range report.Matched {
			seen[key]++
		}
		for key := range report.Missing {
			seen[key]++
			assert.True(t, oldSnap.Has(key))
			assert.False(t, newSnap.Has(key))
		}
		for key := range report.Corrupted {
			seen[key]++
		}
		for key := range report.NewlyCreated {
			seen[key]++
			assert.True(t, newSnap.Has(key))
			assert.False(t, oldSnap.Has(key))
		}

		union := make(map[string]struct{})
		for key := range oldSnap.Records {
			union[key] = struct{}{}
		}
		for key := range newSnap.Records {
			union[key] = struct{}{}
		}

		assert.Len(t, seen, len(union))
		for key, n := range seen {
			assert.Equal(t, 1, n, "key %s classified more than once", key)
			_, ok := union[key]
			assert.True(t, ok)
		}

		var oldKeys []string
		oldKeys = append(oldKeys, report.Matched...)
		oldKeys = append(oldKeys, report.MissingKeys()...)
		oldKeys = append(oldKeys, report.CorruptedKeys()...)
		sort.Strings(oldKeys)
		assert.Equal(t, oldSnap.Keys(), oldKeys)

		var created []string
		for _, key := range newSnap.Keys() {
			if !oldSnap.Has(key) {
				created = append(created, key)
			}
		}
		if created == nil {
			created = []string{}
		}
		assert.Equal(t, created, report.NewlyCreatedKeys())
	}
}

// TestReport_CorruptedFields tests the key to new-fields projection.
func TestReport_CorruptedFields(t *testing.T) {
	report, err := Reconcile(mustParse(t, "K1,a,b", "K2,c"), mustParse(t, "K1,a,z", "K2,c"), Config{})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"K1": {"a", "z"}}, report.CorruptedFields())
}
