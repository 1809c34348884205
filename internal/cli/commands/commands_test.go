package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAddCommand(t *testing.T) {
	cmd := NewAddCommand()

	assert.Equal(t, "add <a> <b>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("interactive"), "flag %q should exist", "interactive")
	assert.NotNil(t, cmd.Flags().ShorthandLookup("i"))
}

func TestNewMultiplyCommand(t *testing.T) {
	cmd := NewMultiplyCommand()

	assert.Equal(t, "multiply <a> <b>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Contains(t, cmd.Long, "Multiply")
	assert.NotNil(t, cmd.Flags().Lookup("interactive"), "flag %q should exist", "interactive")

	// Verify alias exists
	assert.Equal(t, []string{"mul"}, cmd.Aliases)
}
