package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/catloaf567/boilergains/logger"
	"github.com/catloaf567/boilergains/models"
)

// CatalogService loads dining-court nutrition tables into normalized
// FoodItem slices. Catalogs are cached per path and invalidated by file
// modification time; concurrent first loads of one path collapse into a
// single parse. Cached slices are read-only.
type CatalogService struct {
	mu    sync.RWMutex
	cache map[string]catalogEntry
	group singleflight.Group
}

type catalogEntry struct {
	items   []models.FoodItem
	modTime time.Time
}

func NewCatalogService() *CatalogService {
	return &CatalogService{cache: make(map[string]catalogEntry)}
}

// Load returns the catalog for path, parsing the file on first use or after
// it changed on disk.
func (s *CatalogService) Load(path string) ([]models.FoodItem, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &models.DataSourceError{Path: path, Err: err}
	}

	s.mu.RLock()
	entry, ok := s.cache[path]
	s.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) {
		return entry.items, nil
	}

	key := fmt.Sprintf("%s|%d", path, info.ModTime().UnixNano())
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		items, err := parseDataset(path)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[path] = catalogEntry{items: items, modTime: info.ModTime()}
		s.mu.Unlock()
		logger.Info("catalog loaded",
			zap.String("path", path),
			zap.Int("items", len(items)))
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.FoodItem), nil
}

func parseDataset(path string) ([]models.FoodItem, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readWorkbook(path)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, &models.ValidationError{Field: "path", Reason: fmt.Sprintf("unsupported file type %q", ext)}
	}
	if err != nil {
		return nil, &models.DataSourceError{Path: path, Err: err}
	}
	return rowsToItems(rows, datasetName(path)), nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // dining exports are often ragged
	r.TrimLeadingSpace = true
	return r.ReadAll()
}

// Column-name variants seen across dining-court exports. The first matching
// alias wins; a table with no recognizable name column uses its first
// column.
var datasetColumns = []struct {
	field   string
	aliases []string
}{
	{"name", []string{"food", "item", "name"}},
	{"calories", []string{"calories", "kcal", "energy"}},
	{"protein", []string{"protein", "prot", "proteins"}},
	{"carbs", []string{"carbs", "carbohydrates", "carb"}},
	{"fat", []string{"fat", "fats"}},
	{"serving", []string{"serving size", "serving", "portion"}},
	{"fiber", []string{"fiber", "fibre"}},
	{"vegan", []string{"vegan", "is_vegan", "vegan?"}},
	{"allergens", []string{"allergens", "allergy", "contains"}},
}

func detectColumns(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, raw := range header {
		h := strings.ToLower(strings.TrimSpace(raw))
		if _, seen := index[h]; !seen {
			index[h] = i
		}
	}

	cols := make(map[string]int)
	for _, col := range datasetColumns {
		for _, alias := range col.aliases {
			if i, ok := index[alias]; ok {
				cols[col.field] = i
				break
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		cols["name"] = 0
	}
	return cols
}

func rowsToItems(rows [][]string, hall string) []models.FoodItem {
	if len(rows) == 0 {
		return nil
	}
	cols := detectColumns(rows[0])

	// Duplicate names: the last row wins but keeps the first row's position.
	var items []models.FoodItem
	pos := make(map[string]int)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, cols, "name"))
		if name == "" {
			continue
		}
		item := models.FoodItem{
			Name:       name,
			Calories:   parseMacro(cell(row, cols, "calories")),
			Protein:    parseMacro(cell(row, cols, "protein")),
			Carbs:      parseMacro(cell(row, cols, "carbs")),
			Fat:        parseMacro(cell(row, cols, "fat")),
			Fiber:      parseMacro(cell(row, cols, "fiber")),
			Serving:    strings.TrimSpace(cell(row, cols, "serving")),
			Vegan:      parseVegan(cell(row, cols, "vegan")),
			Allergens:  strings.TrimSpace(cell(row, cols, "allergens")),
			DiningHall: hall,
		}
		if i, seen := pos[name]; seen {
			items[i] = item
		} else {
			pos[name] = len(items)
			items = append(items, item)
		}
	}
	return items
}

func cell(row []string, cols map[string]int, field string) string {
	i, ok := cols[field]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseMacro reads a spreadsheet cell as a macro value. Blank or hopeless
// cells stay unknown (nil); textual values like "12 g" read as 12.
func parseMacro(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return &v
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseVegan(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true", "1", "vegan":
		return true
	}
	return false
}

func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
