package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetArgs([]string{})

	require.NoError(t, Cmd.Execute())
	assert.Equal(t, version+"\n", out.String())
}
