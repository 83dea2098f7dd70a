// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nameops

import (
	"fmt"

	"github.com/nmcsuite/nameops/script"
	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <name> <value>",
	Short: "Build a name_update script",
	Long:  `Build the script that replaces the value of a registered name.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := script.NameUpdate{
			Name:  []byte(args[0]),
			Value: []byte(args[1]),
		}
		hex, err := newBuilder().BuildHex(op)
		if err != nil {
			return err
		}
		fmt.Println(hex)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
