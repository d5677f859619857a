package source

// Config names the two snapshot locations of a run.
type Config struct {
	// Old is the location of the previous snapshot.
	Old string `mapstructure:"old" default:"old.csv"`
	// New is the location of the current snapshot.
	New string `mapstructure:"new" default:"new.csv"`
	// Allowed lists extra locations HTTP callers may name, comma separated in the
	// environment (SOURCE_ALLOWED). Old and New are always allowed.
	Allowed []string `mapstructure:"allowed" default:""`
}

// IsAllowed reports whether a caller-supplied location may be read. An empty
// location selects the configured default and is always allowed; anything else
// must match Old, New or an Allowed entry exactly.
func (c Config) IsAllowed(location string) bool {
	if location == "" || location == c.Old || location == c.New {
		return true
	}
	for _, allowed := range c.Allowed {
		if allowed != "" && location == allowed {
			return true
		}
	}
	return false
}
