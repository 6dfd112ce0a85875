package models

import "encoding/json"

// Admin color actions
const (
	ColorActionAdd    = "add"
	ColorActionUpdate = "update"
	ColorActionRemove = "remove"
)

// AdminColorRequest represents the request body for POST /api/admin/colors
// Example: {"password": "...", "action": "add", "color": {"id": "t1_purple", "name": "Purple", "hex_value": "#800080", "fabric_type": "tela1"}}
// Example: {"password": "...", "action": "remove", "color_id": "t1_purple"}
// Color and ColorID stay raw until the password has been checked.
type AdminColorRequest struct {
	Password string          `json:"password"`
	Action   string          `json:"action"`
	Color    json.RawMessage `json:"color,omitempty"`
	ColorID  json.RawMessage `json:"color_id,omitempty"`
}

// MessageResponse is a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body returned by every endpoint
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
