// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nameops

import (
	"fmt"

	"github.com/nmcsuite/nameops/script"
	"github.com/nmcsuite/nameops/util"
	"github.com/spf13/cobra"
)

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit <name> <salt-hex>",
	Short: "Derive the commitment for a future name claim",
	Long: `Derive the commitment digest for a name and salt. The digest is
the payload of a name_new script; keep the salt, the reveal needs it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		salt, err := util.FromHex(args[1])
		if err != nil {
			return fmt.Errorf("invalid salt hex: %v", err)
		}
		fmt.Println(util.Hex(script.MakeCommitment([]byte(args[0]), salt)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
