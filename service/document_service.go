package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"overol-freefly/artifacts"
	"overol-freefly/models"
)

// DocumentGeneratorInterface defines the contract for order document generation
type DocumentGeneratorInterface interface {
	// Generate renders the order document, stores it and returns its artifact address
	Generate(ctx context.Context, order *models.Order) (string, error)
}

// DocumentService renders order documents to PDF and stores them
// Implements DocumentGeneratorInterface
type DocumentService struct {
	printer Printer
	store   artifacts.Store
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(printer Printer, store artifacts.Store) *DocumentService {
	return &DocumentService{
		printer: printer,
		store:   store,
	}
}

// Ensure DocumentService implements DocumentGeneratorInterface
var _ DocumentGeneratorInterface = (*DocumentService)(nil)

// ArtifactKey is the storage key of an order's document
func ArtifactKey(orderID string) string {
	return fmt.Sprintf("order_%s.pdf", orderID)
}

// Generate builds, prints and stores the document for order.
// Nothing is stored unless every step succeeds.
func (s *DocumentService) Generate(ctx context.Context, order *models.Order) (string, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Generate")
	defer span.End()

	log.Printf("📄 Generating document for order %s (%d selections)", order.ID, len(order.Selections))

	doc := BuildOrderDocument(order)
	html, err := RenderHTML(doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to render document")
	}

	pdf, err := s.printer.PrintPDF(ctx, html)
	if err != nil {
		return "", err
	}
	if len(pdf) == 0 {
		return "", errors.New("printer returned an empty document")
	}

	address, err := s.store.Put(ctx, ArtifactKey(order.ID), pdf)
	if err != nil {
		return "", errors.Wrap(err, "failed to store document")
	}

	log.Printf("✅ Document for order %s stored at %s (%d bytes)", order.ID, address, len(pdf))
	return address, nil
}
