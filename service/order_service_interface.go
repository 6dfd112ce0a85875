package service

import (
	"context"
	"io"

	"overol-freefly/models"
)

// OrderDocumentStream is a stored order document ready to be sent
type OrderDocumentStream struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
}

// OrderServiceInterface defines the contract for order operations
type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, customer models.CustomerInfo, selections []models.SuitSelection) (*models.Order, error)
	GetOrderDocument(ctx context.Context, orderID string) (*OrderDocumentStream, error)
}
