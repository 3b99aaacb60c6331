package main

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("vuec.cli")

func usage() {
	fmt.Println(`vuec-go - component compiler
Usage: vuec-go <command> [args]

Commands:
  compile [flags] <file.yaml>...   Compile component descriptors
  help                             Show help

Run "vuec-go compile -h" for compile flags.`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	switch cmd {
	case "help", "-h", "--help":
		usage()
	case "compile":
		if err := runCompile(os.Args[2:], os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}
