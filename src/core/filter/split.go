package filter

import (
	"strings"
)

const (
	entryDelim    = ","
	subEntryDelim = ";"
	commentDelim  = "|"
	legacyDelim   = "?"
)

// SplitSpec turns a raw specification string into a flat list of entries:
// comma-separated entries, comments stripped, semicolon sub-entries
// expanded, everything trimmed.
func SplitSpec(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var entries []string
	for _, piece := range strings.Split(raw, entryDelim) {
		piece = stripComment(strings.TrimSpace(piece))
		for _, sub := range strings.Split(piece, subEntryDelim) {
			sub = strings.TrimSpace(sub)
			if sub == "" {
				continue
			}

			entries = append(entries, sub)
		}
	}

	return entries
}

// SplitEntryFields splits an entry into its three fields on the comment
// delimiter, padding missing fields with empty strings. The legacy "?"
// delimiter counts only when it occurs at least twice.
func SplitEntryFields(entry string) (string, string, string) {
	var fields []string
	switch {
	case strings.Contains(entry, commentDelim):
		fields = strings.SplitN(entry, commentDelim, 3)
	case strings.Count(entry, legacyDelim) >= 2:
		fields = strings.SplitN(entry, legacyDelim, 3)
	default:
		fields = []string{entry}
	}

	for len(fields) < 3 {
		fields = append(fields, "")
	}

	return fields[0], fields[1], fields[2]
}

func stripComment(entry string) string {
	if i := strings.Index(entry, commentDelim); i >= 0 {
		return strings.TrimSpace(entry[:i])
	}

	if strings.Count(entry, legacyDelim) >= 2 {
		i := strings.Index(entry, legacyDelim)
		return strings.TrimSpace(entry[:i])
	}

	return entry
}
