package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"overol-freefly/models"
	"overol-freefly/service"
)

// OrderController handles order creation and document download
type OrderController struct {
	service service.OrderServiceInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(svc service.OrderServiceInterface) *OrderController {
	return &OrderController{service: svc}
}

// CreateOrder handles POST /api/orders
// Body: {"customer_info": {...}, "selections": [...]}
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := service.ValidateOrderPayload(body); err != nil {
		writeError(w, err)
		return
	}

	var req models.CreateOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	order, err := c.service.CreateOrder(r.Context(), req.CustomerInfo, req.Selections)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.CreateOrderResponse{OrderID: order.ID, PDFReady: true})
}

// DownloadPDF handles GET /api/orders/{orderId}/pdf
func (c *OrderController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	doc, err := c.service.GetOrderDocument(r.Context(), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	defer doc.Body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", doc.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, doc.Body); err != nil {
		log.Printf("❌ DownloadPDF: Error writing PDF response for order %s: %v", orderID, err)
	}
}
