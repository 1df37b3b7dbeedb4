package insight

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// Signature derives the dedupe key for a finding: sha256 over the pattern
// type, the identity parameters in sorted-key order, and the window length
// in days. The window's absolute bounds are excluded on purpose, otherwise
// a nightly pass over a sliding window would mint a fresh signature for the
// same conclusion every day and the cooldown would never bite.
func Signature(patternType string, identity map[string]string, windowDays int) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n%dd\n", patternType, windowDays)

	keys := make([]string, 0, len(identity))
	for k := range identity {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s\n", k, identity[k])
	}
	return hex.EncodeToString(h.Sum(nil))
}
