//go:build ignore
// +build ignore

package main

import (
	"log"

	mdref "github.com/mithrel/mdref/internal/cli"
	"github.com/spf13/cobra/doc"
)

func main() {
	root := mdref.NewRootCmd()

	if err := doc.GenMarkdownTree(root, "./docs/markdown"); err != nil {
		log.Fatal(err)
	}

	header := &doc.GenManHeader{
		Title:   "MDREF",
		Section: "1",
	}
	if err := doc.GenManTree(root, header, "./docs/man"); err != nil {
		log.Fatal(err)
	}
}
