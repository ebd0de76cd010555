package main

import (
	"fmt"
	"strings"

	"github.com/villagerdb/geodex"
	"github.com/villagerdb/geodex/registry"
)

// parseKey splits a "field=value" CLI argument into a registry.Key.
// Unrecognized field names are left to the registry to reject with
// UnknownField.
func parseKey(arg string) (registry.Key, error) {
	field, value, ok := strings.Cut(arg, "=")
	if !ok {
		return registry.Key{}, fmt.Errorf("key must be field=value, got %q", arg)
	}
	return registry.Key{Name: field, Value: value}, nil
}

func runGet(gx *geodex.Geodex, opts *options) error {
	key, err := parseKey(opts.Get.Args.Key)
	if err != nil {
		return err
	}
	p := printer()

	switch opts.Get.Args.Kind {
	case "country":
		row, ok, err := gx.Countries.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("no match")
			return nil
		}
		p.Println(row)
	case "subdivision":
		row, ok, err := gx.Subdivisions.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("no match")
			return nil
		}
		p.Println(row)
	case "locality":
		row, ok, err := gx.Localities.Get(key.Value)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("no match")
			return nil
		}
		p.Println(row)
	default:
		return fmt.Errorf("unknown kind %q", opts.Get.Args.Kind)
	}
	return nil
}

func runLookup(gx *geodex.Geodex, opts *options) error {
	p := printer()
	switch opts.Lookup.Args.Kind {
	case "country":
		rows, err := gx.Countries.Lookup(opts.Lookup.Args.Name)
		if err != nil {
			return err
		}
		p.Println(rows)
	case "subdivision":
		rows, err := gx.Subdivisions.Lookup(opts.Lookup.Args.Name, opts.Lookup.Scope)
		if err != nil {
			return err
		}
		p.Println(rows)
	case "locality":
		rows, err := gx.Localities.Lookup(opts.Lookup.Args.Name, opts.Lookup.Scope)
		if err != nil {
			return err
		}
		p.Println(rows)
	default:
		return fmt.Errorf("unknown kind %q", opts.Lookup.Args.Kind)
	}
	return nil
}

func runSearch(gx *geodex.Geodex, opts *options) error {
	p := printer()
	results, err := search(gx, opts.Search.Args.Kind, opts.Search.Args.Query, opts.Search.Limit, opts.Search.Scope)
	if err != nil {
		return err
	}
	p.Println(results)
	return nil
}

// search dispatches by kind and returns a single printable slice,
// since Search's return type differs per entity kind (registry.
// Result[*model.Country] vs. .../Subdivision vs. .../Locality).
func search(gx *geodex.Geodex, kind, query string, limit int, scope string) (any, error) {
	switch kind {
	case "country":
		return gx.Countries.Search(query, limit)
	case "subdivision":
		return gx.Subdivisions.Search(query, limit, scope, nil)
	case "locality":
		return gx.Localities.Search(query, limit, scope, nil)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}
