package pipeline

import (
	"slices"
	"strings"
)

// FeatureFilter is the candidate-selection configuration shared by pipeline
// stages that operate on a subset of the available features.
type FeatureFilter struct {
	// Features is an explicit inclusion list. When set, its order is kept
	// and entries missing from the available set are dropped.
	Features []string

	// Ignore lists features to exclude.
	Ignore []string

	// BeginsWith requires candidate names to start with the given prefix.
	BeginsWith string
}

// SelectFeatures resolves the candidate feature set from the available names.
// Without an explicit inclusion list the available names are sorted so passes
// are deterministic.
func SelectFeatures(available []string, filter FeatureFilter) []string {
	var candidates []string
	if len(filter.Features) > 0 {
		for _, f := range filter.Features {
			if slices.Contains(available, f) {
				candidates = append(candidates, f)
			}
		}
	} else {
		candidates = slices.Sorted(slices.Values(available))
	}

	selected := make([]string, 0, len(candidates))
	for _, f := range candidates {
		if filter.BeginsWith != "" && !strings.HasPrefix(f, filter.BeginsWith) {
			continue
		}
		if slices.Contains(filter.Ignore, f) {
			continue
		}
		selected = append(selected, f)
	}

	return selected
}
