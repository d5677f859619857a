package reconcile

import "strings"

// ParseSnapshot builds a keyed snapshot from a raw delimited-text blob.
//
// The blob is split on '\n' only. Zero-length lines are skipped; whitespace-only
// lines are rows. The first token of a row is its key and the remaining tokens are
// its fields. A key seen twice keeps the later row and is listed in Duplicates.
//
// With cfg.StrictColumns, a row whose token count differs from the first row
// fails with a *MalformedRowError. Otherwise such rows are kept and listed in Ragged.
func ParseSnapshot(blob string, cfg Config) (*Snapshot, error) {
	delim := cfg.delimiter()
	lines := strings.Split(blob, "\n")

	snap := &Snapshot{
		Records:   make(map[string][]string, len(lines)),
		Delimiter: delim,
		Lines:     len(lines),
		Blank:     len(blob) == 0,
	}

	width := -1
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}

		tokens := strings.Split(line, delim)
		key := tokens[0]

		if width < 0 {
			width = len(tokens)
		} else if len(tokens) != width {
			if cfg.StrictColumns {
				return nil, &MalformedRowError{Line: i + 1, Key: key, Want: width, Got: len(tokens)}
			}
			snap.Ragged = append(snap.Ragged, i+1)
		}

		if _, seen := snap.Records[key]; seen {
			snap.Duplicates = append(snap.Duplicates, key)
		}
		snap.Records[key] = tokens[1:]
		snap.Rows++
	}

	return snap, nil
}

// Line rejoins a record's key and fields with the snapshot delimiter.
// It returns false when the key is not present.
func (s *Snapshot) Line(key string) (string, bool) {
	fields, ok := s.Records[key]
	if !ok {
		return "", false
	}
	tokens := make([]string, 0, len(fields)+1)
	tokens = append(tokens, key)
	tokens = append(tokens, fields...)
	return strings.Join(tokens, s.Delimiter), true
}
