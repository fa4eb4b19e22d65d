package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/relstrength/market/data"
)

func newDataCmd(rc *RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Manage local price history",
	}

	var dir string

	importCmd := &cobra.Command{
		Use:   "import ARCHIVE...",
		Short: "Unpack price archives (.zip, .xz, .csv) into the data directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rc.DataDir != "" {
				dir = rc.DataDir
			}
			for _, archive := range args {
				files, err := data.Import(archive, dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Printf("imported %s\n", f)
				}
			}
			return nil
		},
	}
	importCmd.Flags().StringVar(&dir, "dir", "./data", "Destination data directory")

	cmd.AddCommand(importCmd)
	return cmd
}
