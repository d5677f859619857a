package reconcile

// DefaultDelimiter separates fields when none is configured.
const DefaultDelimiter = ","

// Config controls parsing, comparison and sampling.
type Config struct {
	// Delimiter separates fields within a row.
	Delimiter string `mapstructure:"delimiter" default:","`
	// StrictColumns rejects rows whose column count differs from the first row.
	StrictColumns bool `mapstructure:"strict_columns" default:"false"`
	// CompareTrailing also flags new records with more fields than the old record.
	CompareTrailing bool `mapstructure:"compare_trailing" default:"false"`
	// Seed fixes the spot-check sampling. Zero picks a time-based seed.
	Seed int64 `mapstructure:"seed" default:"0"`
}

// delimiter returns the configured delimiter or the default.
func (c Config) delimiter() string {
	if c.Delimiter == "" {
		return DefaultDelimiter
	}
	return c.Delimiter
}
