package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load decodes one embedded definition file into T.
func Load[T any](filename string) (T, error) {
	var out T

	raw, err := defsFS.ReadFile(filename)
	if err != nil {
		return out, fmt.Errorf("embedded defs %s: %w", filename, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", filename, err)
	}
	return out, nil
}
