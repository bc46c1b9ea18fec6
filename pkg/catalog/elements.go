package catalog

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/httputil"
)

// Flavor selects which element-id catalog a lookup consults.
type Flavor int

const (
	// FlavorBrickLink ids come from the published BrickLink codes file.
	FlavorBrickLink Flavor = iota
	// FlavorLEGO ids come from the LEGO element table.
	FlavorLEGO
)

func (f Flavor) String() string {
	if f == FlavorLEGO {
		return "lego"
	}
	return "bricklink"
}

// ElementSource resolves a part+colour pair to an element id.
type ElementSource interface {
	Element(ctx context.Context, partID, colorID string, flavor Flavor) (string, error)
}

// ElementTable is an in-memory element catalog. Keys are
// lowercase(partID) + "_" + colorID per flavor.
type ElementTable struct {
	lego      map[string]string
	bricklink map[string]string
}

// NewElementTable returns an empty table.
func NewElementTable() *ElementTable {
	return &ElementTable{
		lego:      map[string]string{},
		bricklink: map[string]string{},
	}
}

func elementKey(partID, colorID string) string {
	return strings.ToLower(partID) + "_" + colorID
}

// Set registers one element id.
func (t *ElementTable) Set(partID, colorID, element string, flavor Flavor) {
	if flavor == FlavorLEGO {
		t.lego[elementKey(partID, colorID)] = element
	} else {
		t.bricklink[elementKey(partID, colorID)] = element
	}
}

// Element implements [ElementSource] against the in-memory table.
func (t *ElementTable) Element(_ context.Context, partID, colorID string, flavor Flavor) (string, error) {
	m := t.bricklink
	if flavor == FlavorLEGO {
		m = t.lego
	}
	if e, ok := m[elementKey(partID, colorID)]; ok {
		return e, nil
	}
	return "", errors.New(errors.ErrCodeCatalog,
		"no %s element for part %s color %s", flavor, partID, colorID)
}

// Len reports the entry count for a flavor.
func (t *ElementTable) Len(flavor Flavor) int {
	if flavor == FlavorLEGO {
		return len(t.lego)
	}
	return len(t.bricklink)
}

func (t *ElementTable) merge(entries []elementEntry) {
	for _, e := range entries {
		flavor := FlavorBrickLink
		if strings.EqualFold(e.Flavor, "lego") {
			flavor = FlavorLEGO
		}
		t.Set(e.Part, e.Color, e.Element, flavor)
	}
}

// ParseCodes reads a tab-separated codes file into the table: one
// `part<TAB>color<TAB>element` record per line, `#` comments ignored.
// The published BrickLink codes download uses this shape.
func (t *ElementTable) ParseCodes(r io.Reader, flavor Flavor) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	n := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return n, fmt.Errorf("malformed codes line %q", line)
		}
		t.Set(fields[0], fields[1], fields[2], flavor)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	return n, nil
}

// FetchCodes downloads a codes file, caching the body so layout runs
// never hit the network. Pass a nil cache to skip caching.
func (t *ElementTable) FetchCodes(ctx context.Context, client *http.Client, cache *httputil.Cache, url string, flavor Flavor) (int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	var body []byte
	cacheKey := "catalog:" + flavor.String() + ":" + url
	if cache != nil {
		if ok, err := cache.Get(cacheKey, &body); err == nil && ok {
			return t.ParseCodes(bytes.NewReader(body), flavor)
		}
	}
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return &httputil.RetryableError{Err: fmt.Errorf("codes download: %s", resp.Status)}
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("codes download: %s", resp.Status)
		}
		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s element codes", flavor)
	}
	if cache != nil {
		_ = cache.Set(cacheKey, body)
	}
	return t.ParseCodes(bytes.NewReader(body), flavor)
}
