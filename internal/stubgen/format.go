package stubgen

import (
	"fmt"

	"mvdan.cc/gofumpt/format"
)

// formatGo formats rendered Go source in-memory with gofumpt. Unlike
// opportunistic formatting of user files, a failure here means the
// template produced unparseable Go and is reported as an error.
func formatGo(content []byte) ([]byte, error) {
	formatted, err := format.Source(content, format.Options{})
	if err != nil {
		return nil, fmt.Errorf("gofumpt: %w", err)
	}
	return formatted, nil
}
