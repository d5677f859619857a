package reconcile

import (
	"math/rand"
	"strings"
)

// Category names a report classification that can be spot-checked.
type Category string

const (
	// CategoryMissing covers keys present only in the old snapshot.
	CategoryMissing Category = "missing"
	// CategoryNewlyCreated covers keys present only in the new snapshot.
	CategoryNewlyCreated Category = "newly_created"
	// CategoryCorrupted covers keys whose compared fields differ.
	CategoryCorrupted Category = "corrupted"
)

// Check is the outcome of sampling one key from a category and re-verifying it
// against both snapshots.
type Check struct {
	Category Category `json:"category" yaml:"category"`
	// Sampled is false when the category was empty and nothing was drawn.
	Sampled bool   `json:"sampled" yaml:"sampled"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
	Passed  bool   `json:"passed" yaml:"passed"`
	// Detail holds "Old[...], New[...]" for a passing corrupted check.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// SpotCheck samples one key from each of the missing, newly created and
// corrupted categories, in that order, and verifies the sampled key against the
// snapshots. Keys are drawn from the sorted key list so a seeded rng gives a
// reproducible sample.
func SpotCheck(report *Report, oldSnap, newSnap *Snapshot, rng *rand.Rand) []Check {
	checks := make([]Check, 0, 3)

	missing := Check{Category: CategoryMissing}
	if key, ok := sample(report.MissingKeys(), rng); ok {
		missing.Sampled = true
		missing.Key = key
		missing.Passed = oldSnap.Has(key) && !newSnap.Has(key)
	}
	checks = append(checks, missing)

	created := Check{Category: CategoryNewlyCreated}
	if key, ok := sample(report.NewlyCreatedKeys(), rng); ok {
		created.Sampled = true
		created.Key = key
		created.Passed = !oldSnap.Has(key) && newSnap.Has(key)
	}
	checks = append(checks, created)

	corrupted := Check{Category: CategoryCorrupted}
	if key, ok := sample(report.CorruptedKeys(), rng); ok {
		corrupted.Sampled = true
		corrupted.Key = key
		oldFields, inOld := oldSnap.Records[key]
		newFields, inNew := newSnap.Records[key]
		if inOld && inNew && len(CompareFields(oldFields, newFields, true)) > 0 {
			corrupted.Passed = true
			corrupted.Detail = "Old[" + strings.Join(oldFields, ",") + "], New[" + strings.Join(newFields, ",") + "]"
		}
	}
	checks = append(checks, corrupted)

	return checks
}

// sample picks a key uniformly. It returns false for an empty list.
func sample(keys []string, rng *rand.Rand) (string, bool) {
	idx, ok := sampleIndex(len(keys), rng)
	if !ok {
		return "", false
	}
	return keys[idx], true
}

// sampleIndex draws an index in [0, size). It returns false when size is zero.
func sampleIndex(size int, rng *rand.Rand) (int, bool) {
	if size <= 0 {
		return 0, false
	}
	return rng.Intn(size), true
}
