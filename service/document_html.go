package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/order_document.html
var orderDocumentTemplateSrc string

// RenderHTML renders the document as a printable A4 HTML page
func RenderHTML(doc OrderDocument) (string, error) {
	swatches := make(map[string]template.URL)
	funcs := template.FuncMap{
		// swatch returns "" for colors that cannot be parsed; the line still prints
		"swatch": func(hex string) template.URL {
			if uri, ok := swatches[hex]; ok {
				return uri
			}
			uri, err := swatchDataURI(hex)
			if err != nil {
				log.Printf("⚠️  Warning: no swatch for %q: %v", hex, err)
			}
			swatches[hex] = uri
			return uri
		},
	}

	tmpl, err := template.New("order_document").Funcs(funcs).Parse(orderDocumentTemplateSrc)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
