package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderbot/internal/adapters/out/memory/sessionstore"
	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/draft"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextOrderID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, id kernel.OrderID, l order.Line) error {
	args := m.Called(ctx, id, l)
	return args.Error(0)
}

func (m *MockOrderRepository) AddTracking(ctx context.Context, id kernel.OrderID, s order.Status) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) TotalPrice(ctx context.Context, id kernel.OrderID) (float64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockOrderRepository) Status(ctx context.Context, id kernel.OrderID) (order.Status, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Status), args.Bool(1), args.Error(2)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderPlaced(ctx context.Context, event ports.OrderPlaced) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSessionID(t *testing.T, raw string) kernel.SessionID {
	t.Helper()
	id, err := kernel.NewSessionID(raw)
	require.NoError(t, err)
	return id
}

func newOrderID(t *testing.T, v int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(v)
	require.NoError(t, err)
	return id
}

func newLine(t *testing.T, item string, qty int) order.Line {
	t.Helper()
	l, err := order.NewLine(item, qty)
	require.NoError(t, err)
	return l
}

// seedDraft stores a pending order for id, built from item/quantity pairs.
func seedDraft(t *testing.T, store *sessionstore.Store, id kernel.SessionID, lines ...order.Line) {
	t.Helper()
	s, err := store.Acquire(t.Context(), id)
	require.NoError(t, err)
	d := draft.New()
	d.Merge(lines)
	s.Save(d)
	s.Release()
}

// peekDraft returns the session's pending order, if any.
func peekDraft(t *testing.T, store *sessionstore.Store, id kernel.SessionID) (*draft.Order, bool) {
	t.Helper()
	s, err := store.Acquire(t.Context(), id)
	require.NoError(t, err)
	defer s.Release()
	return s.Draft()
}

func newStore() *sessionstore.Store {
	return sessionstore.New(time.Hour)
}
