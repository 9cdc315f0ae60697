package validatecommand_test

import (
	"bytes"
	"testing"

	validatecommand "github.com/redjax/hashkit/internal/commands/validateCommand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidateCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := validatecommand.NewValidateCommand()
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmdAcceptsRealDigest(t *testing.T) {
	out, err := runValidateCmd(t, "md5", "d41d8cd98f00b204e9800998ecf8427e")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidateCmdRejectsWrongLength(t *testing.T) {
	out, err := runValidateCmd(t, "sha256", "deadbeef")
	require.Error(t, err)
	assert.Contains(t, out, "invalid")
	assert.Contains(t, err.Error(), "64 hex characters")
}

func TestValidateCmdRejectsNonHex(t *testing.T) {
	_, err := runValidateCmd(t, "md5", "zzzd8cd98f00b204e9800998ecf8427e")
	require.Error(t, err)
}

func TestValidateCmdUnknownAlgorithm(t *testing.T) {
	_, err := runValidateCmd(t, "crc32", "deadbeef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hash algorithm")
}
