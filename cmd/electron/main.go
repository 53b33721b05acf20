// Command electron is the Electron Cash wallet client.
//
// The binary delegates to internal/cli, which owns flag parsing, the
// launch sequence, and exit-code translation; main stays minimal.
package main

import (
	"os"

	"github.com/romanz/electron/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
