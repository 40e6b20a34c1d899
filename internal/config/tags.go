package config

import (
	"fmt"
	"strings"
)

// ParseTags converts repeated key=value flag values into the tag set.
// Duplicate keys are rejected so a typo does not silently drop a tag.
func ParseTags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	tags := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid tag %q: expected key=value", pair)
		}
		if _, exists := tags[key]; exists {
			return nil, fmt.Errorf("duplicate tag key %q", key)
		}
		tags[key] = value
	}
	return tags, nil
}
