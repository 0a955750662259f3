package commands_test

import (
	"testing"

	"orderbot/internal/core/application/usecases/commands"
	"orderbot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveFromOrderCommand_CopiesItems(t *testing.T) {
	items := []string{"Mango", "Samosa"}
	cmd, err := commands.NewRemoveFromOrderCommand(newSessionID(t, "s1"), items)
	require.NoError(t, err)

	items[0] = "Pizza"
	assert.Equal(t, []string{"Mango", "Samosa"}, cmd.FoodItems())
}

func TestNewRemoveFromOrderCommand_InvalidSessionID(t *testing.T) {
	_, err := commands.NewRemoveFromOrderCommand(kernel.SessionID{}, []string{"Mango"})
	require.Error(t, err)
}
