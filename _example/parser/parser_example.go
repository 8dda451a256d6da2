package main

import (
	"log"
	"os"

	"github.com/xiam/lispm"
	"github.com/xiam/lispm/ast"
)

func main() {
	input := `(fn_a (fn_b 89 :A :B (67 3.27)) (fn_c 66 3 53 "Hello world!" 😊))`

	nodes, err := lispm.Parse(input)
	if err != nil {
		log.Fatal("lispm.Parse:", lispm.FormatError(err, input))
	}

	ast.Print(os.Stdout, nodes...)
}
