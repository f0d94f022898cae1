// SPDX-License-Identifier: MPL-2.0

package main

import cmd "modpilot-cli/cmd/modpilot"

func main() {
	cmd.Execute()
}
