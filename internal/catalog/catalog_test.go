package catalog

import (
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestNewAssignsCodes(t *testing.T) {
  c := New()

  item, ok := c.ItemByCode("a2")
  require.True(t, ok)
  assert.Equal(t, "Bisteck", item.Name)
  assert.Equal(t, CategoryLunches, item.Category)

  item, ok = c.ItemByCode("d3")
  require.True(t, ok)
  assert.Equal(t, "Nacatamal", item.Name)

  _, ok = c.ItemByCode("z9")
  assert.False(t, ok)
}

func TestItemByIndex(t *testing.T) {
  c := New()

  item, ok := c.ItemByIndex(CategoryBeverages, 3)
  require.True(t, ok)
  assert.Equal(t, "Cálala", item.Name)
  assert.Equal(t, "b3", item.Code)

  _, ok = c.ItemByIndex(CategoryBeverages, 0)
  assert.False(t, ok)

  _, ok = c.ItemByIndex(CategoryBeverages, 7)
  assert.False(t, ok)
}

func TestCategoryLookups(t *testing.T) {
  c := New()

  category, ok := c.CategoryByIndex(1)
  require.True(t, ok)
  assert.Equal(t, CategoryBreakfasts, category.Key)

  category, ok = c.CategoryByCode("f")
  require.True(t, ok)
  assert.Equal(t, CategoryStreetFood, category.Key)

  _, ok = c.CategoryByIndex(6)
  assert.False(t, ok)

  _, ok = c.CategoryByKey("postres")
  assert.False(t, ok)
}

func TestRules(t *testing.T) {
  c := New()

  rule, ok := c.Rule(CategoryLunches)
  require.True(t, ok)
  assert.Equal(t, []string{SideTajadas, SideMaduro}, rule.First.Options)
  require.NotNil(t, rule.Second)
  assert.Equal(t, []string{BaseRiceWhite, BaseRiceValencia}, rule.Second.Options)
  assert.Empty(t, rule.Fixed)

  rule, ok = c.Rule(CategoryStreetFood)
  require.True(t, ok)
  assert.Nil(t, rule.Second)
  assert.Equal(t, FixedCabbageSalad, rule.Fixed)

  _, ok = c.Rule(CategoryBeverages)
  assert.False(t, ok)
}

func TestZones(t *testing.T) {
  c := New()

  require.Len(t, c.Zones(), 4)

  zone, ok := c.ZoneByIndex(2)
  require.True(t, ok)
  assert.Equal(t, "Las Fuentes", zone.Label)
  assert.Equal(t, 65, zone.Fee)

  _, ok = c.ZoneByIndex(5)
  assert.False(t, ok)
}

func TestAllItemsFollowCategoryOrder(t *testing.T) {
  c := New()

  all := c.AllItems()
  require.NotEmpty(t, all)

  assert.Equal(t, "d1", all[0].Code)

  total := 0
  for _, category := range c.Categories() {
    total += len(c.Items(category.Key))
  }
  assert.Len(t, all, total)
}
