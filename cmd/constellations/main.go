// Command constellations counts the constellations in a 4-dimensional star chart.
//
// Usage:
//
//	constellations [flags] [file]
//
// Each input line holds one point as "x,y,z,t". The result is printed as
// "constellations: N".
package main

import (
	"os"

	"github.com/katalvlaran/constellations/internal/cli"
)

var Version = "development"

func main() {
	os.Exit(cli.Execute(Version))
}
