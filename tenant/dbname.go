package tenant

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeCode canonicalizes a raw tenant code: trimmed and uppercased.
// All comparisons inside the registry use the normalized form.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// deriveDatabaseName computes the deterministic default logical database name
// for a tenant code: lowercased, runs of non-alphanumeric characters collapsed
// to single underscores, truncated to maxLen. Determinism matters: the default
// database can always be tried first without any lookup.
//
// A code with no alphanumeric characters derives empty, in which case a
// timestamp-based fallback is used. Such names are only ever minted at
// provisioning time, so losing determinism there is acceptable.
func deriveDatabaseName(code string, maxLen int) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(code) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return fmt.Sprintf("property_%d", time.Now().Unix())
	}
	if maxLen > 0 && len(name) > maxLen {
		name = strings.Trim(name[:maxLen], "_")
	}
	return name
}

// quoteIdent wraps an identifier in backticks for safe interpolation into
// cross-database queries. Enumerated database names come back from the store
// verbatim and cannot be bound as placeholders.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
