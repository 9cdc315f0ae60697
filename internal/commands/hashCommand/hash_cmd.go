package hashcommand

import (
	"errors"
	"fmt"
	"strings"

	hashservice "github.com/redjax/hashkit/internal/services/hashService"
	"github.com/spf13/cobra"
)

func NewHashCommand() *cobra.Command {
	var (
		all         bool
		filePath    string
		showMethods bool
	)

	cmd := &cobra.Command{
		Use:   "hash [algorithm] [input]",
		Short: "Compute a hash digest of text or a file.",
		Long: `Compute a digest of the given input and print it as lowercase hex.
Available algorithms (run hashkit hash --methods to list them):
    md5, sha1, sha256, sha384, sha512

Input is taken from the positional argument, from --file, or from stdin when piped.

Examples:
  hashkit hash sha256 "Hello, World!"
  hashkit hash md5 --file ./archive.tar.gz
  echo -n "Hello" | hashkit hash sha1
  hashkit hash --all "Hello, World!"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if showMethods {
				// Allow 0 args when --methods flag is used
				return nil
			}

			if len(args) > 2 {
				return errors.New("accepts at most 2 arguments: [algorithm] [input]")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showMethods {
				names := make([]string, 0, len(hashservice.Algorithms()))
				for _, alg := range hashservice.Algorithms() {
					names = append(names, alg.String())
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Available algorithms: [%s]\n\n", strings.Join(names, ", "))
				fmt.Fprintln(cmd.OutOrStdout(), "Usage:")
				fmt.Fprintln(cmd.OutOrStdout(), `    $> hashkit hash [algorithm] [input]`)

				return nil
			}

			cmd.SilenceUsage = true

			svc := hashservice.NewHashService()

			if all {
				// Every positional is input when hashing with all algorithms.
				text, err := resolveInput(cmd, args, filePath)
				if err != nil {
					return err
				}

				results := svc.ComputeAll(cmd.Context(), text)
				renderResultsTable(cmd.OutOrStdout(), results)

				return nil
			}

			alg, input, hasInput, err := splitArgs(args)
			if err != nil {
				return err
			}

			if filePath != "" {
				if hasInput {
					return errors.New("--file and an input argument are mutually exclusive")
				}

				result, err := hashFile(svc, filePath, alg)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), result.Hash)
				return nil
			}

			if !hasInput {
				input, err = readStdin(cmd)
				if err != nil {
					return err
				}
			}

			result := svc.ComputeOne(input, alg)
			if !result.Success {
				return fmt.Errorf("computing %s digest: %s", alg, result.Err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Hash)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Compute the input's digest under every supported algorithm")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Hash the raw contents of a file instead of argument text")
	cmd.Flags().BoolVar(&showMethods, "methods", false, "Show available hash algorithms")

	return cmd
}
