package commands_test

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToOrderCommandHandler_Handle_CreatesDraft(t *testing.T) {
	ctx := t.Context()
	store := newStore()
	id := newSessionID(t, "s1")

	cmd, _ := commands.NewAddToOrderCommand(id, []string{"Mango", "Chowmein"}, []float64{2, 1})
	h := commands.NewAddToOrderCommandHandler(store)

	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "2 Mango, 1 Chowmein", order.JoinLines(res.Draft))

	d, ok := peekDraft(t, store, id)
	require.True(t, ok)
	assert.Equal(t, "2 Mango, 1 Chowmein", d.String())
}

func TestAddToOrderCommandHandler_Handle_MergesIntoExistingDraft(t *testing.T) {
	ctx := t.Context()
	store := newStore()
	id := newSessionID(t, "s1")
	seedDraft(t, store, id, newLine(t, "Pizza", 1), newLine(t, "Samosa", 2))

	cmd, _ := commands.NewAddToOrderCommand(id, []string{"Samosa", "Mango Lassi"}, []float64{4, 1})
	h := commands.NewAddToOrderCommandHandler(store)

	res, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "1 Pizza, 4 Samosa, 1 Mango Lassi", order.JoinLines(res.Draft))
}

func TestAddToOrderCommandHandler_Handle_IsIdempotent(t *testing.T) {
	ctx := t.Context()
	store := newStore()
	id := newSessionID(t, "s1")

	cmd, _ := commands.NewAddToOrderCommand(id, []string{"Mango"}, []float64{2})
	h := commands.NewAddToOrderCommandHandler(store)

	first, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.JoinLines(first.Draft), order.JoinLines(second.Draft))
	assert.Equal(t, "2 Mango", order.JoinLines(second.Draft))
}

func TestAddToOrderCommandHandler_Handle_LeavesOtherSessionsAlone(t *testing.T) {
	ctx := t.Context()
	store := newStore()
	other := newSessionID(t, "s2")
	seedDraft(t, store, other, newLine(t, "Vada Pav", 3))

	cmd, _ := commands.NewAddToOrderCommand(newSessionID(t, "s1"), []string{"Mango"}, []float64{2})
	h := commands.NewAddToOrderCommandHandler(store)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	d, ok := peekDraft(t, store, other)
	require.True(t, ok)
	assert.Equal(t, "3 Vada Pav", d.String())
}

func TestAddToOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAddToOrderCommandHandler(newStore())
	_, err := h.Handle(t.Context(), commands.AddToOrderCommand{})
	require.ErrorIs(t, err, commands.ErrAddToOrderCommandIsNotConstructed)
}
