package report

// Config holds output options for a reconciliation run.
type Config struct {
	// Format is the output format (text, json, yaml).
	Format string `mapstructure:"format" default:"text"`
	// Details prints the full missing, corrupted and created records after the checks.
	Details bool `mapstructure:"details" default:"false"`
	// Diff prints a unified diff of old and new fields for every corrupted key.
	Diff bool `mapstructure:"diff" default:"false"`
}
