package models

// FabricType represents a fabric the suit can be made of
type FabricType struct {
	ID          string `json:"id" db:"id" yaml:"id"`
	Name        string `json:"name" db:"name" yaml:"name"`
	PatternType string `json:"pattern_type" db:"pattern_type" yaml:"pattern_type"` // diagonal, cross, horizontal
}

// Color represents a palette entry available for a fabric type
type Color struct {
	ID         string `json:"id" db:"id" yaml:"id"`
	Name       string `json:"name" db:"name" yaml:"name"`
	HexValue   string `json:"hex_value" db:"hex_value" yaml:"hex_value"`       // #RRGGBB
	FabricType string `json:"fabric_type" db:"fabric_type" yaml:"fabric_type"` // tela1..tela4, not enforced
}

// FabricTypesResponse is the body of GET /api/fabric-types
type FabricTypesResponse struct {
	FabricTypes []FabricType `json:"fabric_types"`
}

// ColorsResponse is the body of GET /api/colors and GET /api/colors/{fabricTypeId}
type ColorsResponse struct {
	Colors []Color `json:"colors"`
}
