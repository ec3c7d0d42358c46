// Package gamedata holds the definition files compiled into the binary
// and the registries built from them.
package gamedata

import "embed"

// defsFS carries the item and enemy archetype definitions. Shipping them
// inside the binary keeps a given build's raids reproducible.
//
//go:embed items.json enemies.json
var defsFS embed.FS
