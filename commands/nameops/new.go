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

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <commitment-hex>",
	Short: "Build a name_new (commit) script",
	Long: `Build the script of the commit phase of a name registration. The
commitment is the hex digest produced by the commit command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		commitment, err := util.FromHex(args[0])
		if err != nil {
			return fmt.Errorf("invalid commitment hex: %v", err)
		}
		hex, err := newBuilder().BuildHex(script.NameNew{Commitment: commitment})
		if err != nil {
			return err
		}
		fmt.Println(hex)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
