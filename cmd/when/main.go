// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command when does calendar arithmetic on the command line:
//
//	when ago 3 days
//	when nth first saturday 1968-11
//	when shift 2024-02-29 1 year
package main

import (
	"os"

	"gonih.org/when/cmd/when/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
