package api

import "strings"

// Plain converts a YANG identifier to a proto-safe one: hyphens become
// underscores.
func Plain(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Pascal converts a YANG identifier to PascalCase, splitting on runs of
// hyphens and underscores ("factory-reset" -> "FactoryReset").
func Pascal(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
