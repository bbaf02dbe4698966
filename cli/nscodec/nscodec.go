package main

import (
	"github.com/viant/catalog/cli"
	"log"
	"os"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
