// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	"github.com/redjax/hashkit/internal/commands/encodeCommand"
	"github.com/redjax/hashkit/internal/commands/hashCommand"
	"github.com/redjax/hashkit/internal/commands/validateCommand"
	"github.com/redjax/hashkit/internal/commands/versionCommand"
	"github.com/redjax/hashkit/internal/config"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "hashkit",
	// A short description of what the command does
	Short: "Hash digests for text and files.",
	// A longer description for the command
	Long: `Compute md5/sha1/sha256/sha384/sha512 digests of text or files, rendered
as canonical lowercase hex. Includes digest format validation and the raw
byte encodings the digests are computed over.`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON/YAML/TOML/env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(hashcommand.NewHashCommand())
	rootCmd.AddCommand(validatecommand.NewValidateCommand())
	rootCmd.AddCommand(encodecommand.NewEncodeCommand())
	rootCmd.AddCommand(versioncommand.NewVersionCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	config.LoadConfig(rootCmd.PersistentFlags(), cfgFile)
}
