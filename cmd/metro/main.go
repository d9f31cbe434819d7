// Command metro loads a weighted transit network and answers shortest-route
// questions about it.
//
//	metro route --graph city.yaml --from Central --to Airport
//	metro table --graph line.txt --from 0 --format yaml
//	metro generate --kind grid -n 12 --cols 4 --min-weight 1 --max-weight 5 --seed 7
package main

import (
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "metro:", err)
		os.Exit(1)
	}
}
