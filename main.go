// Copyright (c) 2019 Nameops Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/nmcsuite/nameops/commands/nameops"
)

func main() {
	nameops.Execute()
}
