package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overol-freefly/artifacts"
)

func newTestStore(t *testing.T) (*artifacts.FileStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "artifacts")
	store, err := artifacts.NewFileStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestRenderHTML_ContainsDocumentText(t *testing.T) {
	html, err := RenderHTML(BuildOrderDocument(sampleOrder()))
	require.NoError(t, err)

	assert.Contains(t, html, "OVEROL FREEFLY - ORDEN DE PERSONALIZACIÓN")
	assert.Contains(t, html, "Tela #1:")
	assert.Contains(t, html, "Color: #0066CC - Áreas: area1, area3")
	assert.Contains(t, html, "2024-05-01T12:30:00.123456Z")
	assert.Contains(t, html, `src="data:image/png;base64,`)
}

func TestRenderHTML_EscapesCustomerInput(t *testing.T) {
	order := sampleOrder()
	order.CustomerInfo.Name = "<script>alert(1)</script>"

	html, err := RenderHTML(BuildOrderDocument(order))
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_UnparseableHexHasNoSwatch(t *testing.T) {
	order := sampleOrder()
	order.Selections = order.Selections[:1]
	order.Selections[0].ColorHex = "blue"

	html, err := RenderHTML(BuildOrderDocument(order))
	require.NoError(t, err)
	assert.Contains(t, html, "Color: blue - Áreas: area1")
	assert.NotContains(t, html, "data:image/png")
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#0066CC")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), c.R)
	assert.Equal(t, uint8(0x66), c.G)
	assert.Equal(t, uint8(0xCC), c.B)
	assert.Equal(t, uint8(0xFF), c.A)

	for _, bad := range []string{"0066CC", "#0066C", "#GGGGGG", ""} {
		_, err := parseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestDocumentService_GenerateStoresPDF(t *testing.T) {
	store, _ := newTestStore(t)
	printer := &fakePrinter{}
	svc := NewDocumentService(printer, store)
	order := sampleOrder()

	address, err := svc.Generate(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "order_"+order.ID+".pdf", filepath.Base(address))
	assert.Contains(t, printer.lastHTML, "ID de Orden")

	rc, err := store.Open(context.Background(), address)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestDocumentService_PrinterFailureStoresNothing(t *testing.T) {
	store, dir := newTestStore(t)
	svc := NewDocumentService(&fakePrinter{err: errors.New("chrome crashed")}, store)

	_, err := svc.Generate(context.Background(), sampleOrder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome crashed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDocumentService_EmptyPDFIsAnError(t *testing.T) {
	store, dir := newTestStore(t)
	svc := NewDocumentService(&fakePrinter{empty: true}, store)

	_, err := svc.Generate(context.Background(), sampleOrder())
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestArtifactKeyAndFilename(t *testing.T) {
	assert.Equal(t, "order_abc.pdf", ArtifactKey("abc"))
	assert.Equal(t, "overol_orden_abc.pdf", DocumentFilename("abc"))
}
