package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const colorSchemaSrc = `{
  "type": "object",
  "required": ["id", "name", "hex_value", "fabric_type"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "name": {"type": "string", "minLength": 1},
    "hex_value": {"type": "string", "pattern": "^#[0-9A-Fa-f]{6}$"},
    "fabric_type": {"type": "string", "minLength": 1}
  }
}`

const orderSchemaSrc = `{
  "type": "object",
  "required": ["customer_info", "selections"],
  "properties": {
    "customer_info": {
      "type": "object",
      "required": ["name", "phone", "email", "date"],
      "properties": {
        "name": {"type": "string"},
        "phone": {"type": "string"},
        "email": {"type": "string"},
        "date": {"type": "string"}
      }
    },
    "selections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["area_id", "fabric_type", "color_id", "color_hex"],
        "properties": {
          "area_id": {"type": "string"},
          "fabric_type": {"type": "string"},
          "color_id": {"type": "string"},
          "color_hex": {"type": "string"}
        }
      }
    }
  }
}`

var (
	colorSchema = mustCompileSchema("color", colorSchemaSrc)
	orderSchema = mustCompileSchema("order", orderSchemaSrc)
)

func mustCompileSchema(name, src string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	schemaURL := fmt.Sprintf("https://overol-freefly.local/schemas/%s.schema.json", name)
	if err := c.AddResource(schemaURL, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("schema %s load failed: %v", name, err))
	}
	return c.MustCompile(schemaURL)
}

// validateValue checks any JSON-marshalable value against schema
func validateValue(schema *jsonschema.Schema, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ValidateJSON(schema, raw)
}

// ValidateJSON checks a raw JSON document against schema
func ValidateJSON(schema *jsonschema.Schema, raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}

// ValidateOrderPayload checks a create-order request body
func ValidateOrderPayload(raw []byte) error {
	if err := ValidateJSON(orderSchema, raw); err != nil {
		return &DetailError{Kind: ErrInvalidRequest, Detail: "Invalid order payload: " + schemaMessage(err), Cause: err}
	}
	return nil
}

// schemaMessage keeps the first line of a validation error
func schemaMessage(err error) string {
	if ve, ok := err.(*jsonschema.ValidationError); ok {
		leaf := ve
		for len(leaf.Causes) > 0 {
			leaf = leaf.Causes[0]
		}
		return strings.TrimSpace(leaf.InstanceLocation + " " + leaf.Message)
	}
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
