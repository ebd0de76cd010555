package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/villagerdb/geodex/fts"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/store"
	"github.com/villagerdb/geodex/token"
)

// localityLine is the wire shape of one Locality JSONL record (spec
// §6): "osm_id, osm_type, name, optional other_names map, address
// object (must contain a country code and subdivision code), location
// = [lng, lat], optional population".
type localityLine struct {
	OSMID          int64             `json:"osm_id"`
	OSMType        string            `json:"osm_type"`
	Name           string            `json:"name"`
	OtherNames     map[string]string `json:"other_names"`
	Classification string            `json:"classification"`
	Population     *int              `json:"population"`
	Location       []float64         `json:"location"`
	Address        struct {
		CountryCode     string `json:"country_code"`
		SubdivisionCode string `json:"subdivision_code"`
	} `json:"address"`
}

// LoadLocalities parses the Locality JSONL dataset into a Store/Index
// pair. countries and subdivisions must already be loaded, since
// every locality row is required to reference both (spec §3.3
// invariant). Lines missing a mandatory field, an unparsable OSM
// type, an out-of-range lat/lng, or an unresolvable country/
// subdivision code are silently dropped; an empty subdivision code is
// accepted and leaves the row without a subdivision. Duplicate osm
// keys (same osm_type:osm_id) are merged (first one wins).
func LoadLocalities(path string, countries *store.Store[*model.Country], subdivisions *store.Store[*model.Subdivision], logger Logger) (*store.Store[*model.Locality], *fts.Index, Report, error) {
	if logger == nil {
		logger = NullLogger{}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, Report{}, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer f.Close()

	sb := store.NewBuilder[*model.Locality]()
	fb := fts.NewBuilder()
	seenOSMKey := make(map[string]bool)
	seenNamePlace := make(map[string]bool)

	read, dropped, merged := 0, 0, 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		read++

		var rec localityLine
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			dropped++
			logger.Printf("dataset: dropping locality line %d: invalid JSON: %v\n", read, err)
			continue
		}

		name := strings.TrimSpace(rec.Name)
		if name == "" || len(rec.Location) != 2 || rec.Address.CountryCode == "" {
			dropped++
			logger.Printf("dataset: dropping locality line %d: missing mandatory field\n", read)
			continue
		}

		lng, lat := rec.Location[0], rec.Location[1]
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			dropped++
			logger.Printf("dataset: dropping locality line %d: lat/lng out of range\n", read)
			continue
		}

		t, id64, err := model.ParseOSMKey(fmt.Sprintf("%s:%d", rec.OSMType, rec.OSMID))
		if err != nil {
			dropped++
			logger.Printf("dataset: dropping locality line %d: invalid osm key: %v\n", read, err)
			continue
		}
		osmKey := model.OSMKey(t, id64)
		if seenOSMKey[osmKey] {
			merged++
			continue
		}

		countryRow, ok := countries.ByKey("alpha2", strings.ToUpper(rec.Address.CountryCode))
		if !ok {
			dropped++
			logger.Printf("dataset: dropping locality line %d: unknown country %q\n", read, rec.Address.CountryCode)
			continue
		}
		var subdivisionRow *model.Subdivision
		if rec.Address.SubdivisionCode != "" {
			subdivisionRow, ok = subdivisions.ByKey("iso_code", rec.Address.SubdivisionCode)
			if !ok {
				dropped++
				logger.Printf("dataset: dropping locality line %d: unknown subdivision %q\n", read, rec.Address.SubdivisionCode)
				continue
			}
		}

		deepestISO := rec.Address.SubdivisionCode
		namePlaceKey := strings.ToLower(name) + "|" + deepestISO
		if seenNamePlace[namePlaceKey] {
			merged++
			continue
		}

		l := &model.Locality{
			OSMType:        t,
			OSMID:          id64,
			Name:           name,
			Classification: rec.Classification,
			Lat:            lat,
			Lng:            lng,
			CountryRowID:   countryRow.ID,
			CountryAlpha2:  countryRow.Alpha2,
			CountryName:    countryRow.Name,
		}
		if rec.Population != nil {
			l.Population = *rec.Population
		}
		for _, v := range rec.OtherNames {
			l.OtherNames = append(l.OtherNames, v)
		}
		if subdivisionRow != nil {
			l.SubdivisionRowID = subdivisionRow.ID
			l.SubdivisionName = subdivisionRow.Name
			l.SubdivisionLocalCode = subdivisionRow.LocalCode
		}

		id := sb.Add(l)
		l.ID = id
		seenOSMKey[osmKey] = true
		seenNamePlace[namePlaceKey] = true

		fields := []string{l.Name, l.SubdivisionLocalCode, l.SubdivisionName, l.CountryAlpha2, l.CountryName}
		l.SetTokenString(token.String(fields...))
		fb.AddTokens(token.Fields(fields...), id)
		sb.Key("osm_key", osmKey, id)
		sb.Name(l.Name, id)
		for _, alt := range l.OtherNames {
			sb.Name(alt, id)
		}
		fb.AddFilter("country_alpha2", l.CountryAlpha2, id)
		fb.AddFilter("subdivision_iso_code", rec.Address.SubdivisionCode, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, Report{}, fmt.Errorf("dataset: reading %s: %w", path, err)
	}

	report := BuildReport("locality", read, dropped, merged)
	logger.Printf("dataset: loaded %d localities (%d dropped, %d merged)\n", sb.Len(), dropped, merged)
	return sb.Build(), fb.Build(), report, nil
}
