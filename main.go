// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/ginit/ginit/cmd/ginit"

func main() {
	cmd.Execute()
}
