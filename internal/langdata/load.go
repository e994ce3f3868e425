package langdata

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Table file names inside a data directory.
const (
	CodeMapJSON   = "country-code-map.json"
	CodeMapCSV    = "country-code-map.csv"
	CountriesJSON = "language-data.json"
	LanguagesJSON = "language-families.json"
)

//go:embed data/*.json
var embedded embed.FS

// Default returns the tables compiled into the binary.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads the three tables from fsys concurrently. The code map may be
// given as JSON or CSV; JSON wins when both exist.
func Load(ctx context.Context, fsys fs.FS) (Dataset, error) {
	var d Dataset
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		codes, err := loadCodeMap(ctx, fsys)
		if err != nil {
			return err
		}
		d.Codes = codes
		return nil
	})
	g.Go(func() error {
		return readJSON(ctx, fsys, CountriesJSON, &d.Countries)
	})
	g.Go(func() error {
		return readJSON(ctx, fsys, LanguagesJSON, &d.Languages)
	})
	if err := g.Wait(); err != nil {
		return Dataset{}, err
	}
	for code, l := range d.Languages {
		l.Code = code
		d.Languages[code] = l
	}
	return d, nil
}

func readFile(ctx context.Context, fsys fs.FS, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissingTable, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

func readJSON(ctx context.Context, fsys fs.FS, name string, v any) error {
	b, err := readFile(ctx, fsys, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func loadCodeMap(ctx context.Context, fsys fs.FS) (CodeMap, error) {
	var codes CodeMap
	err := readJSON(ctx, fsys, CodeMapJSON, &codes)
	if err == nil {
		return codes, nil
	}
	if !errors.Is(err, ErrMissingTable) {
		return nil, err
	}
	b, err := readFile(ctx, fsys, CodeMapCSV)
	if err != nil {
		return nil, fmt.Errorf("%w: %s or %s", ErrMissingTable, CodeMapJSON, CodeMapCSV)
	}
	return ParseCodeMapCSV(b)
}

// ParseCodeMapCSV reads a code map from CSV. The header must name an id
// column (numeric|id|ccn3) and a code column (alpha2|code|iso2|cca2),
// matched case-insensitively. Numeric ids are zero padded to three digits.
func ParseCodeMapCSV(b []byte) (CodeMap, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", CodeMapCSV, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("decode %s: empty csv", CodeMapCSV)
	}
	idxID, idxCode := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "numeric", "id", "ccn3":
			if idxID == -1 {
				idxID = i
			}
		case "alpha2", "code", "iso2", "cca2":
			if idxCode == -1 {
				idxCode = i
			}
		}
	}
	if idxID == -1 || idxCode == -1 {
		return nil, fmt.Errorf("decode %s: id/code columns not found", CodeMapCSV)
	}
	codes := make(CodeMap, len(recs)-1)
	for _, row := range recs[1:] {
		if idxID >= len(row) || idxCode >= len(row) {
			continue
		}
		id := strings.TrimSpace(row[idxID])
		code := strings.ToUpper(strings.TrimSpace(row[idxCode]))
		if id == "" || code == "" {
			continue
		}
		if n, err := strconv.Atoi(id); err == nil && n >= 0 {
			id = fmt.Sprintf("%03d", n)
		}
		codes[id] = code
	}
	return codes, nil
}
