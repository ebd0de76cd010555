package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"

	"github.com/villagerdb/geodex"
	"github.com/villagerdb/geodex/config"
	"github.com/villagerdb/geodex/util"
)

var version string

type options struct {
	Config  string `short:"c" long:"config" description:"Path to dataset config YAML" value-name:"filename"`
	Help    bool   `long:"help" description:"Show this help"`
	Version bool   `long:"version" description:"Show this version"`

	Get struct {
		Args struct {
			Kind string `positional-arg-name:"kind" description:"country|subdivision|locality"`
			Key  string `positional-arg-name:"key" description:"field=value, e.g. alpha2=US"`
		} `positional-args:"yes" required:"yes"`
	} `command:"get" description:"Exact get by canonical key"`

	Lookup struct {
		Args struct {
			Kind string `positional-arg-name:"kind"`
			Name string `positional-arg-name:"name"`
		} `positional-args:"yes" required:"yes"`
		Scope string `long:"scope" description:"narrow by parent scope, e.g. a country code" value-name:"value"`
	} `command:"lookup" description:"Exact name lookup"`

	Search struct {
		Args struct {
			Kind  string `positional-arg-name:"kind"`
			Query string `positional-arg-name:"query"`
		} `positional-args:"yes" required:"yes"`
		Limit int    `long:"limit" description:"max results" default:"5"`
		Scope string `long:"scope" description:"narrow by parent scope" value-name:"value"`
	} `command:"search" description:"Fuzzy ranked search"`

	Interactive struct {
		Args struct {
			Kind string `positional-arg-name:"kind"`
		}
	} `command:"interactive" description:"Interactive search REPL"`
}

func parseOptions(args []string) (*options, string) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[option...] <command> [args...]"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}

	return &opts, parser.Active.Name
}

func open(opts *options) (*geodex.Geodex, error) {
	if opts.Config == "" {
		return geodex.Default()
	}
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	return geodex.Open(cfg)
}

func main() {
	util.InitSlog()
	opts, command := parseOptions(os.Args[1:])

	gx, err := open(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer gx.Close()

	var runErr error
	switch command {
	case "get":
		runErr = runGet(gx, opts)
	case "lookup":
		runErr = runLookup(gx, opts)
	case "search":
		runErr = runSearch(gx, opts)
	case "interactive":
		runErr = runInteractive(gx, opts)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func printer() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p
}
