package service

import (
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"overol-freefly/models"
	"overol-freefly/utils"
)

// Fixed document text
const (
	DocumentTitle           = "OVEROL FREEFLY - ORDEN DE PERSONALIZACIÓN"
	CustomerSectionHeading  = "INFORMACIÓN DEL CLIENTE"
	SelectionSectionHeading = "SELECCIÓN DE COLORES"
)

// DocumentField is a labelled value line
type DocumentField struct {
	Label string
	Value string
}

// Text renders the field as "Label: value"
func (f DocumentField) Text() string {
	return f.Label + ": " + f.Value
}

// ColorLine lists the areas painted with one (color id, hex) pair
type ColorLine struct {
	ColorID  string
	ColorHex string
	Areas    []string
}

// Text renders the line as it appears in the document
func (l ColorLine) Text() string {
	return fmt.Sprintf("Color: %s - Áreas: %s", l.ColorHex, utils.JoinAreas(l.Areas))
}

// FabricGroup holds the color lines of one fabric type
type FabricGroup struct {
	FabricType string
	Heading    string
	Colors     []ColorLine
}

// OrderDocument is the layout model of an order document, independent of
// how it is rendered
type OrderDocument struct {
	Title            string
	CustomerHeading  string
	Customer         []DocumentField
	SelectionHeading string
	Groups           []FabricGroup
	Trailer          []DocumentField
}

type colorKey struct {
	id  string
	hex string
}

// BuildOrderDocument lays out an order. Selections are grouped by fabric type
// and then by (color id, hex), both in first-seen order; areas keep submission order.
func BuildOrderDocument(order *models.Order) OrderDocument {
	groups := orderedmap.New[string, *orderedmap.OrderedMap[colorKey, *ColorLine]]()
	for _, sel := range order.Selections {
		lines, ok := groups.Get(sel.FabricType)
		if !ok {
			lines = orderedmap.New[colorKey, *ColorLine]()
			groups.Set(sel.FabricType, lines)
		}

		key := colorKey{id: sel.ColorID, hex: sel.ColorHex}
		line, ok := lines.Get(key)
		if !ok {
			line = &ColorLine{ColorID: sel.ColorID, ColorHex: sel.ColorHex}
			lines.Set(key, line)
		}
		line.Areas = append(line.Areas, sel.AreaID)
	}

	fabricGroups := make([]FabricGroup, 0, groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		group := FabricGroup{
			FabricType: pair.Key,
			Heading:    utils.FabricDisplayName(pair.Key),
			Colors:     make([]ColorLine, 0, pair.Value.Len()),
		}
		for line := pair.Value.Oldest(); line != nil; line = line.Next() {
			group.Colors = append(group.Colors, *line.Value)
		}
		fabricGroups = append(fabricGroups, group)
	}

	return OrderDocument{
		Title:           DocumentTitle,
		CustomerHeading: CustomerSectionHeading,
		Customer: []DocumentField{
			{Label: "Nombre", Value: order.CustomerInfo.Name},
			{Label: "Teléfono", Value: order.CustomerInfo.Phone},
			{Label: "Email", Value: order.CustomerInfo.Email},
			{Label: "Fecha", Value: order.CustomerInfo.Date},
		},
		SelectionHeading: SelectionSectionHeading,
		Groups:           fabricGroups,
		Trailer: []DocumentField{
			{Label: "ID de Orden", Value: order.ID},
			{Label: "Fecha de Creación", Value: FormatCreatedAt(order.CreatedAt)},
		},
	}
}

// FormatCreatedAt renders an order timestamp as RFC 3339 in UTC
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// Lines flattens the document into its text lines, top to bottom
func (d OrderDocument) Lines() []string {
	lines := []string{d.Title, d.CustomerHeading}
	for _, f := range d.Customer {
		lines = append(lines, f.Text())
	}
	lines = append(lines, d.SelectionHeading)
	for _, g := range d.Groups {
		lines = append(lines, g.Heading+":")
		for _, c := range g.Colors {
			lines = append(lines, c.Text())
		}
	}
	for _, f := range d.Trailer {
		lines = append(lines, f.Text())
	}
	return lines
}
