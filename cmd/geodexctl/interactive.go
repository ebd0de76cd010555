package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/villagerdb/geodex"
)

// runInteractive is a REPL over one entity kind's Search, grounded on
// cmd/psqldef's use of golang.org/x/term for terminal-aware input --
// here to decide whether to print a "> " prompt rather than read a
// password.
func runInteractive(gx *geodex.Geodex, opts *options) error {
	kind := opts.Interactive.Args.Kind
	if kind == "" {
		kind = "locality"
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	p := printer()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Printf("%s> ", kind)
		}
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		if query == "\\q" || query == "exit" {
			break
		}
		results, err := search(gx, kind, query, 5, "")
		if err != nil {
			fmt.Println(err)
			continue
		}
		p.Println(results)
	}
	return scanner.Err()
}
