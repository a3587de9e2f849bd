package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phonekart/phonekart-agent/internal/app/catalog"
	"github.com/phonekart/phonekart-agent/internal/domain"
)

func intp(v int) *int { return &v }

func testIndex() *catalog.Index {
	return catalog.NewIndex([]domain.Phone{
		{Name: "OnePlus 12R", Brand: "OnePlus", Price: intp(39999), Features: []string{"Fast Charging", "AMOLED Display", "OIS"}},
		{Name: "Pixel 8a", Brand: "Google", Price: intp(52999), Features: []string{"AI Features", "OLED Display"}},
		{Name: "Samsung Galaxy A54", Brand: "Samsung", Price: intp(38999), Features: []string{"AMOLED Display", "Water Resistant"}},
		{Name: "Redmi Note 13 Pro", Brand: "Xiaomi", Price: intp(25999), Features: []string{"Fast Charging"}},
		{Name: "Nothing Phone 2a", Brand: "Nothing", Features: []string{"Fast Charging"}},
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phones.json")
	data := `[{"name":"Pixel 8a","brand":"Google","price":52999,"features":["AI Features"]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	idx, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, idx.Len())

	phones := idx.All()
	assert.Equal(t, "Pixel 8a", phones[0].Name)
	require.NotNil(t, phones[0].Price)
	assert.Equal(t, 52999, *phones[0].Price)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestSearchByBrandIsCaseInsensitive(t *testing.T) {
	idx := testIndex()

	phones := idx.SearchByBrand("samsung")
	require.Len(t, phones, 1)
	assert.Equal(t, "Samsung Galaxy A54", phones[0].Name)
}

func TestSearchByMaxPriceSkipsUnknownPrices(t *testing.T) {
	idx := testIndex()

	phones := idx.SearchByMaxPrice(30000)
	require.Len(t, phones, 1)
	assert.Equal(t, "Redmi Note 13 Pro", phones[0].Name)
}

func TestSearchByFeatureSubstring(t *testing.T) {
	idx := testIndex()

	phones := idx.SearchByFeature("amoled")
	require.Len(t, phones, 2)
	assert.Equal(t, "OnePlus 12R", phones[0].Name)
	assert.Equal(t, "Samsung Galaxy A54", phones[1].Name)
}

func TestSearchByName(t *testing.T) {
	idx := testIndex()

	phones := idx.SearchByName("pixel")
	require.Len(t, phones, 1)
	assert.Equal(t, "Pixel 8a", phones[0].Name)
}

func TestFindManyByNamePreservesCatalogOrder(t *testing.T) {
	idx := testIndex()

	phones := idx.FindManyByName([]string{"nothing phone 2a", "ONEPLUS 12R"})
	require.Len(t, phones, 2)
	assert.Equal(t, "OnePlus 12R", phones[0].Name)
	assert.Equal(t, "Nothing Phone 2a", phones[1].Name)
}

func TestAllReturnsCopy(t *testing.T) {
	idx := testIndex()

	phones := idx.All()
	phones[0].Name = "mutated"

	assert.Equal(t, "OnePlus 12R", idx.All()[0].Name)
}
