// main.go
//
// Entrypoint for the wordleaid binary. All wiring lives in internal/cli.

package main

import "github.com/robalobadob/wordle/apps/wordleaid/internal/cli"

func main() {
	cli.Execute()
}
