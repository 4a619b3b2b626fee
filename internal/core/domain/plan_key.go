package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// GeneratePlanKey creates a deterministic key for caching the plan of a set of
// targets against a given universe digest. Target order does not matter.
func GeneratePlanKey(universeDigest string, targets []string, options ...string) string {
	sortedTargets := slices.Clone(targets)
	slices.Sort(sortedTargets)

	var builder strings.Builder
	builder.WriteString(universeDigest)
	builder.WriteString(";")
	for _, target := range sortedTargets {
		builder.WriteString(target)
		builder.WriteString(";")
	}
	for _, opt := range options {
		builder.WriteString(opt)
		builder.WriteString(";")
	}

	return strconv.FormatUint(xxhash.Sum64String(builder.String()), 16)
}
