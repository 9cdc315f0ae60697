package hashcommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/redjax/hashkit/internal/config"
	hashservice "github.com/redjax/hashkit/internal/services/hashService"
	"github.com/redjax/hashkit/internal/utils/spinner"
	"github.com/spf13/cobra"
)

// splitArgs resolves the positional arguments into an algorithm and optional
// inline input. A single argument is tried as an algorithm name first; when
// it isn't one, it is treated as input text for the configured default
// algorithm. hasInput distinguishes a missing input argument from an
// explicitly empty one.
func splitArgs(args []string) (alg hashservice.Algorithm, input string, hasInput bool, err error) {
	switch len(args) {
	case 2:
		alg, err = hashservice.ParseAlgorithm(args[0])
		return alg, args[1], true, err
	case 1:
		if alg, err = hashservice.ParseAlgorithm(args[0]); err == nil {
			return alg, "", false, nil
		}

		alg, err = defaultAlgorithm()
		return alg, args[0], true, err
	default:
		alg, err = defaultAlgorithm()
		return alg, "", false, err
	}
}

// defaultAlgorithm reads hash.algorithm from the layered config, falling
// back to sha256.
func defaultAlgorithm() (hashservice.Algorithm, error) {
	name := config.K.String("hash.algorithm")
	if name == "" {
		name = "sha256"
	}

	alg, err := hashservice.ParseAlgorithm(name)
	if err != nil {
		return 0, fmt.Errorf("invalid hash.algorithm in config: %w", err)
	}

	return alg, nil
}

// resolveInput picks the input text for --all: the positional argument if
// given, otherwise piped stdin.
func resolveInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if filePath != "" {
		return "", errors.New("--file cannot be combined with --all; pick one algorithm for file hashing")
	}

	if len(args) > 0 {
		return args[len(args)-1], nil
	}

	return readStdin(cmd)
}

// readStdin reads all piped input, trimming one trailing newline so that
// `echo text | hashkit hash` matches `hashkit hash sha256 text`.
func readStdin(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", errors.New("no input provided: pass input text, --file, or pipe data on stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")

	return text, nil
}

// hashFile hashes the raw contents of a file under one algorithm. The whole
// file is read into memory; digests here are one-shot, not streamed.
func hashFile(svc *hashservice.HashService, path string, alg hashservice.Algorithm) (hashservice.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return hashservice.Result{}, fmt.Errorf("reading file: %w", err)
	}

	stop := spinner.StartSpinner(fmt.Sprintf("Computing %s digest of %s ", alg, filepath.Base(path)))
	result := svc.ComputeBytes(data, alg)
	stop()

	if !result.Success {
		return hashservice.Result{}, fmt.Errorf("computing %s digest of %s: %s", alg, path, result.Err)
	}

	return result, nil
}

// renderResultsTable prints one row per algorithm in canonical order.
func renderResultsTable(w io.Writer, results map[hashservice.Algorithm]hashservice.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Algorithm", "Digest"})

	for _, alg := range hashservice.Algorithms() {
		res := results[alg]

		digest := res.Hash
		if !res.Success {
			digest = "error: " + res.Err
		}

		t.AppendRow(table.Row{alg.String(), digest})
	}

	t.Render()
}
