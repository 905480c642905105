// SPDX-License-Identifier: MPL-2.0

package main

import cmd "langpack-cli/cmd/langpack"

func main() {
	cmd.Execute()
}
