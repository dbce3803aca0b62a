// Command triangle opens a window and draws a single animated triangle,
// printing frame timing to the console until Escape or a close request.
package main

import (
	"os"

	"triangle/internal/demo"
)

func main() {
	os.Exit(demo.Main(os.Args))
}
