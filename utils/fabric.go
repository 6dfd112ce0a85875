package utils

import (
	"strings"
)

// FabricDisplayName turns a fabric type id into its document heading.
// Example: "tela1" -> "Tela #1". Ids without "tela" are returned unchanged.
func FabricDisplayName(fabricTypeID string) string {
	return strings.ReplaceAll(fabricTypeID, "tela", "Tela #")
}

// JoinAreas formats area ids as "a, b, c"
func JoinAreas(areas []string) string {
	return strings.Join(areas, ", ")
}
