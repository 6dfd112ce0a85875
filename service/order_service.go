package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"overol-freefly/artifacts"
	"overol-freefly/models"
	"overol-freefly/repository"
)

// OrderService creates orders and serves their documents
// Implements OrderServiceInterface
type OrderService struct {
	repository repository.OrderRepositoryInterface
	documents  DocumentGeneratorInterface
	store      artifacts.Store
	now        func() time.Time
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepositoryInterface, documents DocumentGeneratorInterface, store artifacts.Store) *OrderService {
	return &OrderService{
		repository: repo,
		documents:  documents,
		store:      store,
		now:        time.Now,
	}
}

// Ensure OrderService implements OrderServiceInterface
var _ OrderServiceInterface = (*OrderService)(nil)

// DocumentFilename is the download name of an order's document
func DocumentFilename(orderID string) string {
	return fmt.Sprintf("overol_orden_%s.pdf", orderID)
}

// CreateOrder generates the order document and then persists the order.
// An order is only stored once its document exists.
func (s *OrderService) CreateOrder(ctx context.Context, customer models.CustomerInfo, selections []models.SuitSelection) (*models.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if selections == nil {
		selections = []models.SuitSelection{}
	}
	order := &models.Order{
		ID:           uuid.New().String(),
		CustomerInfo: customer,
		Selections:   append([]models.SuitSelection(nil), selections...),
		CreatedAt:    s.now().UTC(),
	}
	span.SetAttributes(attribute.String("order.id", order.ID), attribute.Int("order.selections", len(selections)))

	log.Printf("📥 Creating order %s for %s", order.ID, customer.Name)

	address, err := s.documents.Generate(ctx, order)
	if err != nil {
		log.Printf("❌ Document generation failed for order %s: %v", order.ID, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "document generation failed")
		return nil, generationFailed(err)
	}
	order.DocumentPath = address

	if err := s.repository.Insert(ctx, order); err != nil {
		log.Printf("❌ Error saving order %s: %v", order.ID, err)
		if delErr := s.store.Delete(ctx, address); delErr != nil {
			log.Printf("⚠️  Warning: failed to discard document %s: %v", address, delErr)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "order insert failed")
		return nil, errors.Wrapf(err, "failed to save order %s", order.ID)
	}

	log.Printf("✅ Order %s created", order.ID)
	return order, nil
}

// GetOrderDocument opens the stored document of an order
func (s *OrderService) GetOrderDocument(ctx context.Context, orderID string) (*OrderDocumentStream, error) {
	ctx, span := tracer.Start(ctx, "OrderService.GetOrderDocument",
		trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	order, err := s.repository.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newDetailError(ErrNotFound, "Order not found")
		}
		return nil, errors.Wrapf(err, "failed to load order %s", orderID)
	}

	if order.DocumentPath == "" {
		return nil, newDetailError(ErrNotFound, "PDF not found")
	}

	body, err := s.store.Open(ctx, order.DocumentPath)
	if err != nil {
		if errors.Is(err, artifacts.ErrArtifactNotFound) {
			log.Printf("⚠️  Document for order %s missing at %s", orderID, order.DocumentPath)
			return nil, newDetailError(ErrNotFound, "PDF not found")
		}
		return nil, errors.Wrapf(err, "failed to open document for order %s", orderID)
	}

	return &OrderDocumentStream{
		Body:        body,
		ContentType: "application/pdf",
		Filename:    DocumentFilename(orderID),
	}, nil
}
