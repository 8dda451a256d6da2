// Command lispm prints the tokens or the syntax tree of a program.
//
//	lispm tree --format sexpr program.lisp
//	echo '(+ 1 2)' | lispm tokens
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
