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

// firstupdateCmd represents the firstupdate command
var firstupdateCmd = &cobra.Command{
	Use:   "firstupdate <name> <salt-hex> <value>",
	Short: "Build a name_firstupdate (reveal) script",
	Long: `Build the script of the reveal phase of a name registration: the
name, the salt used in the earlier commitment, and the initial value.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		salt, err := util.FromHex(args[1])
		if err != nil {
			return fmt.Errorf("invalid salt hex: %v", err)
		}
		op := script.NameFirstUpdate{
			Name:  []byte(args[0]),
			Salt:  salt,
			Value: []byte(args[2]),
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
	rootCmd.AddCommand(firstupdateCmd)
}
