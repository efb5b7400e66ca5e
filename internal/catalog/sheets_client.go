package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Source is what the conversation engine consumes. Implementations never
// return errors: catalog failures degrade to the built-in fallback menu.
type Source interface {
	ListCategories(ctx context.Context) []Category
	ListItems(ctx context.Context, category string) []MenuItem
}

// Expected header rows for each sheet, after normalization
// (trim, lower-case, whitespace collapsed to underscores).
var (
	categoryHeaders = []string{"category", "description", "type"}
	itemHeaders     = []string{"parent_category", "item_name", "price", "options", "type"}
)

// SheetsClient reads menu rows from the Google Sheets values API.
type SheetsClient struct {
	httpClient      *http.Client
	baseURL         string
	sheetID         string
	apiKey          string
	categoriesSheet string
	itemsSheet      string
}

func NewSheetsClient(baseURL, sheetID, apiKey, categoriesSheet, itemsSheet string) *SheetsClient {
	return &SheetsClient{
		httpClient:      &http.Client{Timeout: 10 * time.Second},
		baseURL:         baseURL,
		sheetID:         sheetID,
		apiKey:          apiKey,
		categoriesSheet: categoriesSheet,
		itemsSheet:      itemsSheet,
	}
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

func (c *SheetsClient) fetchRows(ctx context.Context, sheet string) ([][]string, error) {
	u := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL, url.PathEscape(c.sheetID), url.PathEscape(sheet), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sheets api %s failed: %s", sheet, strings.TrimSpace(string(b)))
	}
	var vr valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, err
	}
	return vr.Values, nil
}

// ListCategories returns the category rows, or the fallback list when the
// sheet is unreachable or fails schema validation.
func (c *SheetsClient) ListCategories(ctx context.Context) []Category {
	rows, err := c.fetchRows(ctx, c.categoriesSheet)
	if err != nil {
		log.Printf("[catalog] category fetch failed, using fallback: %v", err)
		return fallbackCategories()
	}
	cats, err := parseCategoryRows(rows)
	if err != nil {
		log.Printf("[catalog] category rows rejected, using fallback: %v", err)
		return fallbackCategories()
	}
	return cats
}

// ListItems returns the item rows for one category, or the fallback list
// filtered the same way when the sheet is unreachable or invalid.
func (c *SheetsClient) ListItems(ctx context.Context, category string) []MenuItem {
	rows, err := c.fetchRows(ctx, c.itemsSheet)
	if err != nil {
		log.Printf("[catalog] item fetch failed, using fallback: %v", err)
		return filterItems(fallbackItems(), category)
	}
	items, err := parseItemRows(rows)
	if err != nil {
		log.Printf("[catalog] item rows rejected, using fallback: %v", err)
		return filterItems(fallbackItems(), category)
	}
	return filterItems(items, category)
}

func filterItems(items []MenuItem, category string) []MenuItem {
	out := make([]MenuItem, 0, len(items))
	for _, it := range items {
		if it.ParentCategory == category {
			out = append(out, it)
		}
	}
	return out
}

func normalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
}

// validateHeaders checks row 0 against the fixed schema for the sheet.
func validateHeaders(row []string, want []string) error {
	if len(row) < len(want) {
		return fmt.Errorf("header row has %d columns, want %d", len(row), len(want))
	}
	for i, w := range want {
		if normalizeHeader(row[i]) != w {
			return fmt.Errorf("header %d is %q, want %q", i, row[i], w)
		}
	}
	return nil
}

func parseCategoryRows(rows [][]string) ([]Category, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet has %d rows, need header plus data", len(rows))
	}
	if err := validateHeaders(rows[0], categoryHeaders); err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 1 || strings.TrimSpace(row[0]) == "" {
			return nil, fmt.Errorf("row %d has no category name", i+1)
		}
		c := Category{Name: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			c.Description = strings.TrimSpace(row[1])
		}
		if len(row) > 2 {
			c.Kind = strings.TrimSpace(row[2])
		}
		out = append(out, c)
	}
	return out, nil
}

func parseItemRows(rows [][]string) ([]MenuItem, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet has %d rows, need header plus data", len(rows))
	}
	if err := validateHeaders(rows[0], itemHeaders); err != nil {
		return nil, err
	}
	out := make([]MenuItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d has %d columns, need at least 3", i+1, len(row))
		}
		price, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d has bad price %q", i+1, row[2])
		}
		it := MenuItem{
			ParentCategory: strings.TrimSpace(row[0]),
			ItemName:       strings.TrimSpace(row[1]),
			Price:          price,
		}
		if len(row) > 3 {
			it.Options = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			it.Kind = strings.TrimSpace(row[4])
		}
		out = append(out, it)
	}
	return out, nil
}
