package http

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, item string, qty int) order.Line {
	t.Helper()
	l, err := order.NewLine(item, qty)
	require.NoError(t, err)
	return l
}

func TestRemovedText(t *testing.T) {
	tests := []struct {
		name string
		res  commands.RemoveFromOrderResult
		want string
	}{
		{
			name: "removed and left",
			res: commands.RemoveFromOrderResult{
				Removed:   []string{"Pizza", "Samosa"},
				Remaining: []order.Line{mustLine(t, "Mango Lassi", 2)},
			},
			want: "Removed Pizza, Samosa from your order. " +
				"Here is what is left in your order: 2 Mango Lassi. Do you need anything else ?",
		},
		{
			name: "nothing matched",
			res: commands.RemoveFromOrderResult{
				Absent:    []string{"Dosa", "Idli"},
				Remaining: []order.Line{mustLine(t, "Pizza", 1)},
			},
			want: "The items Dosa, Idli are not in your current order. " +
				"Here is what is left in your order: 1 Pizza. Do you need anything else ?",
		},
		{
			name: "emptied",
			res:  commands.RemoveFromOrderResult{Removed: []string{"Pizza"}},
			want: "Removed Pizza from your order. Your order is now empty!",
		},
		{
			name: "already empty",
			res:  commands.RemoveFromOrderResult{},
			want: "Your order is now empty!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, removedText(tt.res))
		})
	}
}

func TestPlacedText_FormatsTotal(t *testing.T) {
	id, err := kernel.NewOrderID(12)
	require.NoError(t, err)

	got := placedText(commands.CompleteOrderResult{OrderID: id, Total: 17.5})
	assert.Equal(t, "Awesome. We have placed your order. Here is your order id # 12. "+
		"Your order total is 17.50 which you can pay at the time of delivery!", got)
}
