package models

import "time"

// CustomerInfo holds the contact details submitted with an order.
// Values are free text and are copied verbatim into the order document.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Date  string `json:"date"`
}

// SuitSelection is the color chosen for one garment area.
// ColorHex is captured at submission time so the document shows what the client displayed.
type SuitSelection struct {
	AreaID     string `json:"area_id" db:"area_id"`
	FabricType string `json:"fabric_type" db:"fabric_type"`
	ColorID    string `json:"color_id" db:"color_id"`
	ColorHex   string `json:"color_hex" db:"color_hex"`
}

// Order represents a submitted customization order
type Order struct {
	ID           string          `json:"id"`
	CustomerInfo CustomerInfo    `json:"customer_info"`
	Selections   []SuitSelection `json:"selections"`
	CreatedAt    time.Time       `json:"created_at"`
	DocumentPath string          `json:"document_path"`
}

// CreateOrderRequest represents the request body for POST /api/orders
// Example:
//
//	{
//	  "customer_info": {"name": "John Doe", "phone": "+1234567890", "email": "john.doe@example.com", "date": "2024-01-15"},
//	  "selections": [{"area_id": "area1", "fabric_type": "tela1", "color_id": "t1_blue", "color_hex": "#0066CC"}]
//	}
type CreateOrderRequest struct {
	CustomerInfo CustomerInfo    `json:"customer_info"`
	Selections   []SuitSelection `json:"selections"`
}

// CreateOrderResponse represents the response after creating an order
type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	PDFReady bool   `json:"pdf_ready"`
}
