package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/villagerdb/geodex/fts"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/store"
	"github.com/villagerdb/geodex/token"
)

// LoadCountries parses the Country CSV (spec §6: "#country_code_alpha2,
// country_code_alpha3, numeric_code, name_short, name_long") into a
// Store/Index pair ready for registry.NewCountryRegistry's loader.
// Rows missing alpha2, alpha3, or name_short are silently dropped;
// a repeated alpha2 is treated as a duplicate and merged (first one
// wins).
func LoadCountries(path string, logger Logger) (*store.Store[*model.Country], *fts.Index, Report, error) {
	if logger == nil {
		logger = NullLogger{}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, Report{}, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, nil, Report{}, fmt.Errorf("dataset: reading header of %s: %w", path, err)
	}
	col := indexHeader(header)

	sb := store.NewBuilder[*model.Country]()
	fb := fts.NewBuilder()
	seenAlpha2 := make(map[string]bool)

	read, dropped, merged := 0, 0, 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, Report{}, fmt.Errorf("dataset: reading %s: %w", path, err)
		}
		read++

		alpha2 := strings.ToUpper(strings.TrimSpace(field(rec, col, "#country_code_alpha2")))
		alpha3 := strings.ToUpper(strings.TrimSpace(field(rec, col, "country_code_alpha3")))
		name := strings.TrimSpace(field(rec, col, "name_short"))
		if alpha2 == "" || alpha3 == "" || name == "" {
			dropped++
			logger.Printf("dataset: dropping country row %d: missing mandatory field\n", read)
			continue
		}
		if seenAlpha2[alpha2] {
			merged++
			continue
		}
		seenAlpha2[alpha2] = true

		numeric, _ := strconv.Atoi(strings.TrimSpace(field(rec, col, "numeric_code")))
		longName := strings.TrimSpace(field(rec, col, "name_long"))
		aliases := splitAliases(field(rec, col, "aliases"))

		c := &model.Country{Alpha2: alpha2, Alpha3: alpha3, Numeric: numeric, Name: name, LongName: longName, Aliases: aliases}
		id := sb.Add(c)
		c.ID = id

		fields := append([]string{c.Name, c.LongName, c.Alpha2, c.Alpha3}, aliases...)
		c.SetTokenString(token.String(fields...))
		fb.AddTokens(token.Fields(fields...), id)
		sb.Key("alpha2", c.Alpha2, id)
		sb.Key("alpha3", c.Alpha3, id)
		sb.Key("numeric", strconv.Itoa(c.Numeric), id)
		sb.Name(c.Name, id)
		if c.LongName != "" {
			sb.Name(c.LongName, id)
		}
		for _, a := range aliases {
			sb.Name(a, id)
		}
	}

	report := BuildReport("country", read, dropped, merged)
	logger.Printf("dataset: loaded %d countries (%d dropped, %d merged)\n", sb.Len(), dropped, merged)
	return sb.Build(), fb.Build(), report, nil
}

// splitAliases parses the optional semicolon-separated "aliases"
// column (spec §6: Country CSV header "including" the listed columns,
// not limited to them; spec.md §4.2's token table names "each alias"
// as a Country token source). Blank entries and a missing column both
// yield nil.
func splitAliases(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	aliases := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			aliases = append(aliases, p)
		}
	}
	return aliases
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func field(rec []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
