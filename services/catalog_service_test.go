package services

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/catloaf567/boilergains/models"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogService_LoadCSVWithHeaderVariants(t *testing.T) {
	path := writeCSV(t, "menu.csv",
		"Item,Energy,Prot,Carbohydrates,Fats,Portion,Fibre,Vegan?,Contains\n"+
			"Grilled Chicken,200,35,0,4,6 oz,0,no,\n"+
			"Brown Rice,150,4 g,32,1,1 cup,2,yes,\n"+
			"Mystery Soup,,,,,,,,\n"+
			"Protein Bar,190,20\n"+
			",100,,,,,,,\n")

	items, err := NewCatalogService().Load(path)
	require.NoError(t, err)
	require.Len(t, items, 4)

	chicken := items[0]
	if chicken.Name != "Grilled Chicken" {
		t.Fatalf("expected Grilled Chicken first, got %s", chicken.Name)
	}
	require.NotNil(t, chicken.Calories)
	if *chicken.Calories != 200 {
		t.Errorf("expected 200 kcal, got %f", *chicken.Calories)
	}
	require.NotNil(t, chicken.Protein)
	if *chicken.Protein != 35 {
		t.Errorf("expected 35 g protein, got %f", *chicken.Protein)
	}
	if chicken.Vegan {
		t.Error("chicken should not parse as vegan")
	}
	if chicken.Serving != "6 oz" {
		t.Errorf("expected serving '6 oz', got %q", chicken.Serving)
	}
	if chicken.DiningHall != "menu" {
		t.Errorf("expected dining hall 'menu', got %q", chicken.DiningHall)
	}

	rice := items[1]
	require.NotNil(t, rice.Protein)
	// "4 g" strips to 4
	if *rice.Protein != 4 {
		t.Errorf("expected 4 g protein from '4 g', got %f", *rice.Protein)
	}
	if !rice.Vegan {
		t.Error("rice should parse vegan from 'yes'")
	}

	soup := items[2]
	if soup.Calories != nil || soup.Protein != nil || soup.Fiber != nil {
		t.Errorf("blank cells should stay unknown, got %+v", soup)
	}

	bar := items[3]
	require.NotNil(t, bar.Protein)
	if *bar.Protein != 20 {
		t.Errorf("expected 20 g protein on short row, got %f", *bar.Protein)
	}
	if bar.Carbs != nil {
		t.Error("columns past a short row should stay unknown")
	}
}

func TestCatalogService_NameFallsBackToFirstColumn(t *testing.T) {
	path := writeCSV(t, "odd.csv",
		"dish,kcal\n"+
			"Waffle,310\n")

	items, err := NewCatalogService().Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	if items[0].Name != "Waffle" {
		t.Errorf("expected first column as name, got %q", items[0].Name)
	}
	require.NotNil(t, items[0].Calories)
	if *items[0].Calories != 310 {
		t.Errorf("expected 310 kcal via 'kcal' alias, got %f", *items[0].Calories)
	}
}

func TestCatalogService_DuplicateNamesLastRowWins(t *testing.T) {
	path := writeCSV(t, "dupes.csv",
		"Food,Calories\n"+
			"Pizza,300\n"+
			"Salad,120\n"+
			"Pizza,500\n")

	items, err := NewCatalogService().Load(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	if items[0].Name != "Pizza" {
		t.Fatalf("expected Pizza to keep first position, got %s", items[0].Name)
	}
	require.NotNil(t, items[0].Calories)
	if *items[0].Calories != 500 {
		t.Errorf("expected the last row's 500 kcal, got %f", *items[0].Calories)
	}
}

func TestCatalogService_VeganTruthyValues(t *testing.T) {
	path := writeCSV(t, "vegan.csv",
		"Food,Vegan\n"+
			"A,y\nB,YES\nC,true\nD,1\nE,vegan\nF,no\nG,0\nH,\n")

	items, err := NewCatalogService().Load(path)
	require.NoError(t, err)
	require.Len(t, items, 8)
	for i, want := range []bool{true, true, true, true, true, false, false, false} {
		if items[i].Vegan != want {
			t.Errorf("item %s: expected vegan=%v", items[i].Name, want)
		}
	}
}

func TestCatalogService_LoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Windsor-20250922.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1",
		&[]interface{}{"Food", "Calories", "Protein", "Carbs", "Fat", "Serving Size", "Fiber", "Is_Vegan", "Allergens"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2",
		&[]interface{}{"Tofu Scramble", 220, "18 g", 6, 14, "1 bowl", 2, "TRUE", "soy"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3",
		&[]interface{}{"Bagel", 280, 10, 55, 1.5, "1 bagel", 2, "", "gluten"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	items, err := NewCatalogService().Load(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	tofu := items[0]
	if tofu.Name != "Tofu Scramble" {
		t.Fatalf("expected Tofu Scramble, got %s", tofu.Name)
	}
	require.NotNil(t, tofu.Calories)
	if *tofu.Calories != 220 {
		t.Errorf("expected 220 kcal, got %f", *tofu.Calories)
	}
	require.NotNil(t, tofu.Protein)
	if *tofu.Protein != 18 {
		t.Errorf("expected 18 g protein, got %f", *tofu.Protein)
	}
	if !tofu.Vegan {
		t.Error("expected vegan from 'TRUE'")
	}
	if tofu.Allergens != "soy" {
		t.Errorf("expected allergens 'soy', got %q", tofu.Allergens)
	}
	if tofu.DiningHall != "Windsor-20250922" {
		t.Errorf("expected dining hall from file name, got %q", tofu.DiningHall)
	}
}

func TestCatalogService_HeaderOnlyFileIsEmptyCatalog(t *testing.T) {
	path := writeCSV(t, "empty.csv", "Food,Calories\n")

	items, err := NewCatalogService().Load(path)
	require.NoError(t, err)
	if len(items) != 0 {
		t.Errorf("expected empty catalog, got %d items", len(items))
	}
}

func TestCatalogService_MissingFile(t *testing.T) {
	_, err := NewCatalogService().Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var dErr *models.DataSourceError
	if !errors.As(err, &dErr) {
		t.Fatalf("expected DataSourceError, got %T", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestCatalogService_UnsupportedExtension(t *testing.T) {
	path := writeCSV(t, "menu.txt", "Food,Calories\nPizza,300\n")

	_, err := NewCatalogService().Load(path)
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCatalogService_CacheInvalidatesOnModTime(t *testing.T) {
	path := writeCSV(t, "menu.csv", "Food,Calories\nPizza,300\n")
	svc := NewCatalogService()

	items, err := svc.Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, os.WriteFile(path,
		[]byte("Food,Calories\nPizza,300\nSalad,120\n"), 0o644))
	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	items, err = svc.Load(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestCatalogService_ConcurrentLoads(t *testing.T) {
	path := writeCSV(t, "menu.csv", "Food,Calories\nPizza,300\nSalad,120\n")
	svc := NewCatalogService()

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			items, err := svc.Load(path)
			if err == nil && len(items) != 2 {
				err = errors.New("wrong item count")
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("goroutine %d: %v", i, err)
		}
	}
}
