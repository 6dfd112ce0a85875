package service

import (
	"context"
	"sync"

	"overol-freefly/models"
	"overol-freefly/repository"
)

// memoryCatalog is an in-memory CatalogRepositoryInterface
type memoryCatalog struct {
	mu          sync.Mutex
	fabricTypes []models.FabricType
	colors      []models.Color
	insertErr   error
}

var _ repository.CatalogRepositoryInterface = (*memoryCatalog)(nil)

func (m *memoryCatalog) ListFabricTypes(ctx context.Context) ([]models.FabricType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.FabricType{}, m.fabricTypes...), nil
}

func (m *memoryCatalog) ListColors(ctx context.Context) ([]models.Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Color{}, m.colors...), nil
}

func (m *memoryCatalog) ListColorsByFabricType(ctx context.Context, fabricTypeID string) ([]models.Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Color{}
	for _, c := range m.colors {
		if c.FabricType == fabricTypeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryCatalog) FindColor(ctx context.Context, id string) (*models.Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.colors {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryCatalog) InsertColor(ctx context.Context, color *models.Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, c := range m.colors {
		if c.ID == color.ID {
			return repository.ErrAlreadyExists
		}
	}
	m.colors = append(m.colors, *color)
	return nil
}

func (m *memoryCatalog) ReplaceColor(ctx context.Context, id string, color *models.Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.colors {
		if c.ID == id {
			m.colors[i] = *color
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memoryCatalog) DeleteColor(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.colors {
		if c.ID == id {
			m.colors = append(m.colors[:i], m.colors[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memoryCatalog) InsertFabricType(ctx context.Context, fabricType *models.FabricType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ft := range m.fabricTypes {
		if ft.ID == fabricType.ID {
			return repository.ErrAlreadyExists
		}
	}
	m.fabricTypes = append(m.fabricTypes, *fabricType)
	return nil
}

func (m *memoryCatalog) FabricTypeIDs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []string{}
	for _, ft := range m.fabricTypes {
		ids = append(ids, ft.ID)
	}
	return ids, nil
}

func (m *memoryCatalog) ColorIDs(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []string{}
	for _, c := range m.colors {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

// memoryOrders is an in-memory OrderRepositoryInterface
type memoryOrders struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	insertErr error
}

var _ repository.OrderRepositoryInterface = (*memoryOrders)(nil)

func newMemoryOrders() *memoryOrders {
	return &memoryOrders{orders: make(map[string]models.Order)}
}

func (m *memoryOrders) Insert(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	if _, ok := m.orders[order.ID]; ok {
		return repository.ErrAlreadyExists
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memoryOrders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (m *memoryOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// fakePrinter returns a fixed PDF, or err when set
type fakePrinter struct {
	mu       sync.Mutex
	err      error
	empty    bool
	lastHTML string
}

func (p *fakePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastHTML = html
	if p.err != nil {
		return nil, p.err
	}
	if p.empty {
		return nil, nil
	}
	return []byte("%PDF-1.4\n" + html), nil
}
