package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/villagerdb/geodex/fts"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/store"
	"github.com/villagerdb/geodex/token"
)

// LoadSubdivisions parses the Subdivision CSV (spec §6:
// "subdivision_code_iso3166-2, subdivision_name, category,
// localVariant, parent_subdivision, and its country code") into a
// Store/Index pair. countries must already be loaded, since every
// subdivision row is required to reference an existing Country (spec
// §3.2 invariant).
func LoadSubdivisions(path string, countries *store.Store[*model.Country], logger Logger) (*store.Store[*model.Subdivision], *fts.Index, Report, error) {
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

	sb := store.NewBuilder[*model.Subdivision]()
	fb := fts.NewBuilder()
	isoToRow := make(map[string]*model.Subdivision)
	parentOf := make(map[string]string)

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

		isoCode := strings.TrimSpace(field(rec, col, "subdivision_code_iso3166-2"))
		name := strings.TrimSpace(field(rec, col, "subdivision_name"))
		countryAlpha2 := strings.ToUpper(strings.TrimSpace(field(rec, col, "country_code_alpha2")))
		if isoCode == "" || name == "" || countryAlpha2 == "" {
			dropped++
			logger.Printf("dataset: dropping subdivision row %d: missing mandatory field\n", read)
			continue
		}
		countryRow, ok := countries.ByKey("alpha2", countryAlpha2)
		if !ok {
			dropped++
			logger.Printf("dataset: dropping subdivision row %d: unknown country %q\n", read, countryAlpha2)
			continue
		}
		if _, exists := isoToRow[isoCode]; exists {
			merged++
			continue
		}

		category := strings.TrimSpace(field(rec, col, "category"))
		altName := strings.TrimSpace(field(rec, col, "localVariant"))
		parentISO := strings.TrimSpace(field(rec, col, "parent_subdivision"))
		localCode := isoCode
		if i := strings.Index(isoCode, "-"); i >= 0 {
			localCode = isoCode[i+1:]
		}

		s := &model.Subdivision{
			ISOCode:       isoCode,
			LocalCode:     localCode,
			Name:          name,
			AltName:       altName,
			Category:      category,
			CountryRowID:  countryRow.ID,
			CountryAlpha2: countryRow.Alpha2,
			CountryName:   countryRow.Name,
		}
		id := sb.Add(s)
		s.ID = id
		isoToRow[isoCode] = s
		parentOf[isoCode] = parentISO

		sb.Key("iso_code", isoCode, id)
		sb.Name(name, id)
		if altName != "" {
			sb.Name(altName, id)
		}
		fb.AddFilter("country_alpha2", countryRow.Alpha2, id)
	}

	memo := make(map[string]int)
	inProgress := make(map[string]bool)
	for iso, row := range isoToRow {
		row.AdminLevel = resolveAdminLevel(iso, parentOf, isoToRow, memo, inProgress)
		if parentISO := parentOf[iso]; parentISO != "" {
			if parentRow, ok := isoToRow[parentISO]; ok {
				row.ParentRowID = parentRow.ID
			}
		}

		fields := []string{row.Name, row.AltName, row.LocalCode, row.CountryAlpha2, row.CountryName}
		row.SetTokenString(token.String(fields...))
		fb.AddTokens(token.Fields(fields...), row.ID)
	}

	report := BuildReport("subdivision", read, dropped, merged)
	logger.Printf("dataset: loaded %d subdivisions (%d dropped, %d merged)\n", sb.Len(), dropped, merged)
	return sb.Build(), fb.Build(), report, nil
}

// resolveAdminLevel computes a subdivision's depth (root = 1),
// memoized and guarded against cyclic parent_subdivision references
// in malformed input (a cycle resolves to 1 rather than looping
// forever).
func resolveAdminLevel(iso string, parentOf map[string]string, isoToRow map[string]*model.Subdivision, memo map[string]int, inProgress map[string]bool) int {
	if lvl, ok := memo[iso]; ok {
		return lvl
	}
	if inProgress[iso] {
		return 1
	}
	// A row whose parent chain leads back to itself is part of a cycle;
	// every member of the cycle resolves to 1.
	cur := parentOf[iso]
	for steps := 0; cur != "" && steps <= len(parentOf); steps++ {
		if cur == iso {
			memo[iso] = 1
			return 1
		}
		cur = parentOf[cur]
	}
	inProgress[iso] = true
	defer delete(inProgress, iso)

	parentISO := parentOf[iso]
	if parentISO == "" {
		memo[iso] = 1
		return 1
	}
	if _, ok := isoToRow[parentISO]; !ok {
		memo[iso] = 1
		return 1
	}
	lvl := 1 + resolveAdminLevel(parentISO, parentOf, isoToRow, memo, inProgress)
	memo[iso] = lvl
	return lvl
}
