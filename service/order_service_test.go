package service

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overol-freefly/models"
)

func newOrderFixture(t *testing.T, printer *fakePrinter) (*OrderService, *memoryOrders, string) {
	t.Helper()
	store, dir := newTestStore(t)
	orders := newMemoryOrders()
	svc := NewOrderService(orders, NewDocumentService(printer, store), store)
	return svc, orders, dir
}

func TestCreateOrder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newOrderFixture(t, &fakePrinter{})
	in := sampleOrder()

	order, err := svc.CreateOrder(ctx, in.CustomerInfo, in.Selections)
	require.NoError(t, err)

	_, err = uuid.Parse(order.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.DocumentPath)
	assert.Equal(t, 1, orders.count())

	stored, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Selections, stored.Selections)
	assert.Equal(t, in.CustomerInfo, stored.CustomerInfo)

	doc, err := svc.GetOrderDocument(ctx, order.ID)
	require.NoError(t, err)
	defer doc.Body.Close()
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "overol_orden_"+order.ID+".pdf", doc.Filename)

	data, err := io.ReadAll(doc.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID de Orden")
}

func TestCreateOrder_IDsAreUnique(t *testing.T) {
	svc, _, _ := newOrderFixture(t, &fakePrinter{})
	in := sampleOrder()

	a, err := svc.CreateOrder(context.Background(), in.CustomerInfo, in.Selections)
	require.NoError(t, err)
	b, err := svc.CreateOrder(context.Background(), in.CustomerInfo, in.Selections)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateOrder_GenerationFailurePersistsNothing(t *testing.T) {
	svc, orders, dir := newOrderFixture(t, &fakePrinter{err: errors.New("boom")})
	in := sampleOrder()

	_, err := svc.CreateOrder(context.Background(), in.CustomerInfo, in.Selections)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Equal(t, "Error generating PDF: boom", Detail(err))
	assert.Equal(t, 0, orders.count())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateOrder_InsertFailureDiscardsDocument(t *testing.T) {
	svc, orders, dir := newOrderFixture(t, &fakePrinter{})
	orders.insertErr = errors.New("database is down")
	in := sampleOrder()

	_, err := svc.CreateOrder(context.Background(), in.CustomerInfo, in.Selections)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrGenerationFailed))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetOrderDocument_UnknownOrder(t *testing.T) {
	svc, _, _ := newOrderFixture(t, &fakePrinter{})

	_, err := svc.GetOrderDocument(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Order not found", Detail(err))
}

func TestGetOrderDocument_NoDocumentPath(t *testing.T) {
	svc, orders, _ := newOrderFixture(t, &fakePrinter{})
	orders.orders["legacy"] = models.Order{ID: "legacy"}

	_, err := svc.GetOrderDocument(context.Background(), "legacy")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "PDF not found", Detail(err))
}

func TestGetOrderDocument_ArtifactMissing(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newOrderFixture(t, &fakePrinter{})
	in := sampleOrder()

	order, err := svc.CreateOrder(ctx, in.CustomerInfo, in.Selections)
	require.NoError(t, err)
	require.NoError(t, os.Remove(order.DocumentPath))

	_, err = svc.GetOrderDocument(ctx, order.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "PDF not found", Detail(err))
}
