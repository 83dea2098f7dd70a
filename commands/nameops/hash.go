// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nameops

import (
	"fmt"

	"github.com/spf13/cobra"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash <name>",
	Short: "Derive the history-index fingerprint of a name",
	Long: `Derive the script-hash fingerprint a history-index server is
queried with to look up the transaction history of a name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fingerprint, err := newBuilder().HashForName(args[0])
		if err != nil {
			return err
		}
		fmt.Println(fingerprint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
