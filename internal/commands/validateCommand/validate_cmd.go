package validatecommand

import (
	"fmt"

	hashservice "github.com/redjax/hashkit/internal/services/hashService"
	"github.com/spf13/cobra"
)

func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [algorithm] [candidate]",
		Short: "Check whether a string is structurally a valid digest for an algorithm.",
		Long: `Check a candidate string against the shape of a digest: the canonical hex
length for the algorithm, hex characters only. This does not verify the
candidate is the digest of any particular input.

Examples:
  hashkit validate md5 d41d8cd98f00b204e9800998ecf8427e
  hashkit validate sha256 deadbeef
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := hashservice.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			candidate := args[1]
			if !hashservice.LooksLikeHash(candidate, alg) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return fmt.Errorf("not a structurally valid %s digest (want %d hex characters)", alg, alg.HexLength())
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")

			return nil
		},
	}

	return cmd
}
