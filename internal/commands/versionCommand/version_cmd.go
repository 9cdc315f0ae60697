package versioncommand

import (
	"fmt"

	"github.com/redjax/hashkit/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			pkgInfo := version.GetPackageInfo()

			if full {
				fmt.Printf(
					"Program: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
					pkgInfo.PackageName,
					pkgInfo.RepoUrl,
					pkgInfo.PackageVersion,
					pkgInfo.PackageCommit,
					pkgInfo.PackageReleaseDate,
				)

				return
			}

			// Print version string
			fmt.Printf("version:%s commit:%s date:%s\n", pkgInfo.PackageVersion, pkgInfo.PackageCommit, pkgInfo.PackageReleaseDate)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Show full package info, including repository URL")

	return cmd
}
