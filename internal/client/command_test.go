package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_UsageAndArity(t *testing.T) {
	cmd := &Command{Name: "owning-collection", Args: []string{"item-handle", "new-collection-handle"}}

	assert.Equal(t, "dspace-utils owning-collection [flags] item-handle new-collection-handle", cmd.usage())
	assert.NoError(t, cmd.checkArgs([]string{"1/1", "1/2"}))

	for _, args := range [][]string{nil, {"1/1"}, {"1/1", "1/2", "1/3"}} {
		err := cmd.checkArgs(args)
		require.Error(t, err)
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, ExitUsage, exitErr.Code)
	}
}
