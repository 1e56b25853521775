package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dhruvgupta3389/anvad/internal/models"
	"github.com/dhruvgupta3389/anvad/internal/ports/secondary"
)

// testLogger returns a logger that discards output.
func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Ensure mockCatalogRepository implements the interface
var _ secondary.CatalogRepository = (*mockCatalogRepository)(nil)

// mockCatalogRepository implements secondary.CatalogRepository for testing.
type mockCatalogRepository struct {
	products map[int]*models.Product
	variants map[string]*models.Variant // keyed sku/productID

	pingErr       error
	getProductErr map[int]error
	getVariantErr map[string]error
	listErr       error
	collections   []*models.Collection
}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{
		products:      make(map[int]*models.Product),
		variants:      make(map[string]*models.Variant),
		getProductErr: make(map[int]error),
		getVariantErr: make(map[string]error),
	}
}

func variantKey(sku string, productID int) string {
	return fmt.Sprintf("%s/%d", sku, productID)
}

func (m *mockCatalogRepository) addProduct(p models.Product) {
	cp := p
	m.products[p.ID] = &cp
	for _, v := range p.Variants {
		cv := v
		m.variants[variantKey(v.SKU, p.ID)] = &cv
	}
}

func (m *mockCatalogRepository) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	if err := m.getProductErr[id]; err != nil {
		return nil, err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return p, nil
}

func (m *mockCatalogRepository) GetVariant(ctx context.Context, sku string, productID int) (*models.Variant, error) {
	if err := m.getVariantErr[variantKey(sku, productID)]; err != nil {
		return nil, err
	}
	v, ok := m.variants[variantKey(sku, productID)]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return v, nil
}

func (m *mockCatalogRepository) ListProducts(ctx context.Context, filters secondary.ProductFilters) ([]*models.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*models.Product
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockCatalogRepository) ListCollections(ctx context.Context) ([]*models.Collection, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.collections, nil
}

func (m *mockCatalogRepository) Ping(ctx context.Context) error {
	return m.pingErr
}

// Ensure mockOrderRepository implements the interface
var _ secondary.OrderRepository = (*mockOrderRepository)(nil)

// mockOrderRepository implements secondary.OrderRepository for testing.
type mockOrderRepository struct {
	orders    []*models.Order
	nextID    int
	createErr error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{nextID: 1}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	id := m.nextID
	m.nextID++
	cp := *order
	cp.ID = id
	m.orders = append(m.orders, &cp)
	return id, nil
}

func (m *mockOrderRepository) GetByReference(ctx context.Context, reference string) (*models.Order, error) {
	for _, o := range m.orders {
		if o.Reference == reference {
			return o, nil
		}
	}
	return nil, secondary.ErrNotFound
}

func (m *mockOrderRepository) List(ctx context.Context, limit int) ([]*models.Order, error) {
	return m.orders, nil
}

func (m *mockOrderRepository) MarkPaid(ctx context.Context, reference, paymentID string, paidAt time.Time) error {
	for _, o := range m.orders {
		if o.Reference == reference {
			o.PaymentStatus = models.PaymentStatusCompleted
			o.PaymentID = paymentID
			o.PaidAt = &paidAt
			return nil
		}
	}
	return secondary.ErrNotFound
}

// Ensure mockOTPRepository implements the interface
var _ secondary.OTPRepository = (*mockOTPRepository)(nil)

// mockOTPRepository implements secondary.OTPRepository for testing.
type mockOTPRepository struct {
	records map[string]secondary.OTPRecord
}

func newMockOTPRepository() *mockOTPRepository {
	return &mockOTPRepository{records: make(map[string]secondary.OTPRecord)}
}

func (m *mockOTPRepository) Replace(ctx context.Context, record secondary.OTPRecord) error {
	m.records[record.Email] = record
	return nil
}

func (m *mockOTPRepository) Get(ctx context.Context, email string) (*secondary.OTPRecord, error) {
	rec, ok := m.records[email]
	if !ok {
		return nil, secondary.ErrNotFound
	}
	return &rec, nil
}

func (m *mockOTPRepository) Delete(ctx context.Context, email string) error {
	delete(m.records, email)
	return nil
}

// Ensure mockNewsletterRepository implements the interface
var _ secondary.NewsletterRepository = (*mockNewsletterRepository)(nil)

type mockNewsletterRepository struct {
	subscribed map[string]bool
}

func newMockNewsletterRepository() *mockNewsletterRepository {
	return &mockNewsletterRepository{subscribed: make(map[string]bool)}
}

func (m *mockNewsletterRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	if m.subscribed[email] {
		return false, nil
	}
	m.subscribed[email] = true
	return true, nil
}

// Ensure mockKeyValueStore implements the interface
var _ secondary.KeyValueStore = (*mockKeyValueStore)(nil)

// mockKeyValueStore implements secondary.KeyValueStore for testing.
type mockKeyValueStore struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	setErr error
}

func newMockKeyValueStore() *mockKeyValueStore {
	return &mockKeyValueStore{values: make(map[string]string)}
}

func (m *mockKeyValueStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", secondary.ErrNotFound
	}
	return v, nil
}

func (m *mockKeyValueStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// Ensure mockMailer implements the interface
var _ secondary.Mailer = (*mockMailer)(nil)

// mockMailer implements secondary.Mailer for testing.
type mockMailer struct {
	mu         sync.Mutex
	otps       map[string]string
	confirmed  []string
	sendOTPErr error
	done       chan struct{}
}

func newMockMailer() *mockMailer {
	return &mockMailer{otps: make(map[string]string)}
}

func (m *mockMailer) SendOTP(ctx context.Context, to, code string) error {
	if m.sendOTPErr != nil {
		return m.sendOTPErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps[to] = code
	return nil
}

func (m *mockMailer) SendOrderConfirmation(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	m.confirmed = append(m.confirmed, order.Reference)
	m.mu.Unlock()
	if m.done != nil {
		close(m.done)
	}
	return nil
}

func (m *mockMailer) confirmedRefs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.confirmed...)
}

var errBoom = errors.New("boom")
