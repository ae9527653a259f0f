package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"iconlist/internal/models"
)

// ErrMalformed is returned when a body is not the JSON shape a decoder expects.
var ErrMalformed = errors.New("malformed listing")

const FileType = "file"

// DecodeEntries decodes a JSON array of directory entries. Anything other
// than an array, including null, is rejected.
func DecodeEntries(body []byte) ([]models.DirectoryEntry, error) {
	var entries []models.DirectoryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", ErrMalformed, describe(body))
	}
	return entries, nil
}

// FileNames returns the names of entries whose type is "file", in input order.
// Names are not validated or deduplicated.
func FileNames(entries []models.DirectoryEntry) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type == FileType {
			names = append(names, entry.Name)
		}
	}
	return names
}

// DecodeKeys decodes a JSON object and returns its keys in sorted order, the
// shape used by metadata documents keyed by icon name.
func DecodeKeys(body []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrMalformed, describe(body))
	}
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// MatchSuffix keeps names ending in suffix, trimming it when trim is set.
func MatchSuffix(names []string, suffix string, trim bool) []string {
	if suffix == "" {
		return names
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		if trim {
			name = strings.TrimSuffix(name, suffix)
		}
		out = append(out, name)
	}
	return out
}

func describe(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > 32 {
		trimmed = trimmed[:32] + "..."
	}
	if trimmed == "" {
		return "an empty body"
	}
	return fmt.Sprintf("%q", trimmed)
}
