package hashcommand_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	hashcommand "github.com/redjax/hashkit/internal/commands/hashCommand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHashCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := hashcommand.NewHashCommand()
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewBufferString(stdin))

	err := cmd.Execute()
	return out.String(), err
}

func TestHashCmdAlgorithmAndInput(t *testing.T) {
	out, err := runHashCmd(t, "", "md5", "abc")
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out)
}

func TestHashCmdDashedAlgorithmSpelling(t *testing.T) {
	out, err := runHashCmd(t, "", "SHA-256", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)
}

func TestHashCmdStdinInput(t *testing.T) {
	out, err := runHashCmd(t, "abc\n", "md5")
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out)
}

func TestHashCmdDefaultAlgorithm(t *testing.T) {
	// One non-algorithm argument hashes as input text with the default
	// algorithm (sha256 unless configured otherwise).
	out, err := runHashCmd(t, "", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)
}

func TestHashCmdAllRendersEveryAlgorithm(t *testing.T) {
	out, err := runHashCmd(t, "", "--all", "abc")
	require.NoError(t, err)

	for _, name := range []string{"md5", "sha1", "sha256", "sha384", "sha512"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "900150983cd24fb0d6963f7d28e17f72")
	assert.Contains(t, out, "a9993e364706816aba3e25717850c26c9cd0d89d")
}

func TestHashCmdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	out, err := runHashCmd(t, "", "md5", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", out)
}

func TestHashCmdFileAndInputConflict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	_, err := runHashCmd(t, "", "md5", "inline text", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestHashCmdUnknownAlgorithm(t *testing.T) {
	// Two positionals force the first to be an algorithm name.
	_, err := runHashCmd(t, "", "sha3", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hash algorithm")
}

func TestHashCmdMethods(t *testing.T) {
	out, err := runHashCmd(t, "", "--methods")
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "md5") && strings.Contains(out, "sha512"))
}
