package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/villagerdb/geodex/errs"
)

// OSMKey returns the external identifier "<type>:<id>" for a Locality
// (spec §3.3, §6).
func OSMKey(t OSMType, id int64) string {
	return fmt.Sprintf("%c:%d", byte(t), id)
}

// ParseOSMKey parses a Locality identifier in "<type>:<id>" form.
// The type may be a single char (n/w/r) or a long form
// (node/way/relation), case-insensitively; surrounding whitespace is
// tolerated.
func ParseOSMKey(s string) (OSMType, int64, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, errs.New(errs.InvalidIdentifier, fmt.Sprintf("%q is not in type:id form", s))
	}

	typ, err := parseOSMType(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}

	idStr := strings.TrimSpace(parts[1])
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, 0, errs.Wrap(errs.InvalidIdentifier, fmt.Sprintf("%q is not a numeric id", idStr), err)
	}

	return typ, id, nil
}

func parseOSMType(s string) (OSMType, error) {
	switch strings.ToLower(s) {
	case "n", "node":
		return OSMNode, nil
	case "w", "way":
		return OSMWay, nil
	case "r", "relation":
		return OSMRelation, nil
	default:
		return 0, errs.New(errs.InvalidIdentifier, fmt.Sprintf("unknown osm type %q", s))
	}
}
