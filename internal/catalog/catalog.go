package catalog

import (
  "fmt"

  "github.com/elmerol/comanda/internal/models"
)

const (
  CategoryBreakfasts Key = "desayunos"
  CategoryLunches    Key = "almuerzos"
  CategoryStreetFood Key = "fritanga"
  CategoryBeverages  Key = "bebidas"
  CategoryExtras     Key = "extras"
)

type Key = string

const (
  SideTajadas = "tajadas"
  SideMaduro  = "maduro"

  BaseRiceWhite    = "arroz blanco"
  BaseRiceValencia = "arroz a la valenciana"

  FixedCabbageSalad = "ensalada de repollo"
)

// OutOfAreaLabel is the sentinel district: it never resolves to a fee,
// it routes the order to manual handling instead.
const OutOfAreaLabel = "Otra zona"

const (
  StoreAddress = "De la entrada de las fuentes 5c y media al sur, mano izquierda"
  StoreHours   = "9:00 a.m. a 10:00 p.m."
)

var categories = []models.Category{
  {Code: "d", Key: CategoryBreakfasts, Title: "Desayunos", Description: "Para empezar el día"},
  {Code: "a", Key: CategoryLunches, Title: "Almuerzos", Description: "Platos principales"},
  {Code: "f", Key: CategoryStreetFood, Title: "Fritanga", Description: "Platos a la parrilla"},
  {Code: "b", Key: CategoryBeverages, Title: "Bebidas", Description: "Frescos y cacao"},
  {Code: "e", Key: CategoryExtras, Title: "Extras", Description: "Porciones y acompañantes"},
}

var menu = map[Key][]models.CatalogItem{
  CategoryBreakfasts: {
    {Name: "Desayuno tradicional", Price: 120},
    {Name: "Huevos rancheros", Price: 110},
    {Name: "Nacatamal", Price: 80},
    {Name: "Gallo pinto con queso", Price: 90},
  },
  CategoryLunches: {
    {Name: "Pollo tapado", Price: 150},
    {Name: "Bisteck", Price: 180},
    {Name: "Carne desmenuzada", Price: 180},
    {Name: "Pollo asado", Price: 200},
    {Name: "Carne asada", Price: 200},
    {Name: "Arroz a la valenciana", Price: 150},
    {Name: "Baho", Price: 200},
  },
  CategoryStreetFood: {
    {Name: "Parrillada de pollo", Price: 170},
    {Name: "Parrillada de cerdo", Price: 190},
    {Name: "Parrillada mixta", Price: 220},
    {Name: "Enchiladas", Price: 60},
    {Name: "Tacos de pollo", Price: 90},
  },
  CategoryBeverages: {
    {Name: "Jamaica", Price: 35},
    {Name: "Guayaba", Price: 35},
    {Name: "Cálala", Price: 35},
    {Name: "Naranja", Price: 35},
    {Name: "Cebada", Price: 35},
    {Name: "Cacao", Price: 60},
  },
  CategoryExtras: {
    {Name: "Tajadas con queso", Price: 50},
    {Name: "Maduro frito", Price: 40},
    {Name: "Queso frito", Price: 45},
    {Name: "Tortillas", Price: 15},
  },
}

var rules = map[Key]models.AccompanimentRule{
  CategoryLunches: {
    First: models.AccompanimentChoice{
      Prompt:  "¿Con qué acompañamos?",
      Options: []string{SideTajadas, SideMaduro},
    },
    Second: &models.AccompanimentChoice{
      Prompt:  "¿Qué arroz preferís?",
      Options: []string{BaseRiceWhite, BaseRiceValencia},
    },
  },
  CategoryStreetFood: {
    First: models.AccompanimentChoice{
      Prompt:  "¿Con qué acompañamos?",
      Options: []string{SideTajadas, SideMaduro},
    },
    Fixed: FixedCabbageSalad,
  },
}

var zones = []models.DeliveryZone{
  {Label: "Centro", Fee: 50},
  {Label: "Las Fuentes", Fee: 65},
  {Label: "Villa Venezuela", Fee: 80},
  {Label: "Carretera Norte", Fee: 100},
}

// Catalog is static for the process lifetime: built once, read-only after.
type Catalog struct {
  categories []models.Category
  items      map[Key][]models.CatalogItem
  byCode     map[string]models.CatalogItem
  byKey      map[Key]models.Category
}

func New() *Catalog {
  c := &Catalog{
    categories: categories,
    items:      make(map[Key][]models.CatalogItem, len(menu)),
    byCode:     make(map[string]models.CatalogItem),
    byKey:      make(map[Key]models.Category, len(categories)),
  }

  for _, category := range categories {
    c.byKey[category.Key] = category

    list := make([]models.CatalogItem, 0, len(menu[category.Key]))

    for index, item := range menu[category.Key] {
      item.Code = fmt.Sprintf("%s%d", category.Code, index+1)
      item.Category = category.Key

      list = append(list, item)
      c.byCode[item.Code] = item
    }

    c.items[category.Key] = list
  }

  return c
}

func (c *Catalog) Categories() []models.Category {
  return c.categories
}

// CategoryByIndex resolves a 1-based position in the category list.
func (c *Catalog) CategoryByIndex(index int) (models.Category, bool) {
  if index < 1 || index > len(c.categories) {
    return models.Category{}, false
  }
  return c.categories[index-1], true
}

func (c *Catalog) CategoryByKey(key Key) (models.Category, bool) {
  category, ok := c.byKey[key]
  return category, ok
}

func (c *Catalog) CategoryByCode(code string) (models.Category, bool) {
  for _, category := range c.categories {
    if category.Code == code {
      return category, true
    }
  }
  return models.Category{}, false
}

func (c *Catalog) Items(key Key) []models.CatalogItem {
  return c.items[key]
}

func (c *Catalog) AllItems() []models.CatalogItem {
  all := make([]models.CatalogItem, 0, len(c.byCode))

  for _, category := range c.categories {
    all = append(all, c.items[category.Key]...)
  }

  return all
}

// ItemByCode resolves a category-prefixed code like "a3" or "b2".
func (c *Catalog) ItemByCode(code string) (models.CatalogItem, bool) {
  item, ok := c.byCode[code]
  return item, ok
}

// ItemByIndex resolves a 1-based position inside a category.
func (c *Catalog) ItemByIndex(key Key, index int) (models.CatalogItem, bool) {
  list := c.items[key]

  if index < 1 || index > len(list) {
    return models.CatalogItem{}, false
  }
  return list[index-1], true
}

// Rule returns the accompaniment rule of a category. Categories without
// a rule go straight to quantity selection.
func (c *Catalog) Rule(key Key) (models.AccompanimentRule, bool) {
  rule, ok := rules[key]
  return rule, ok
}

func (c *Catalog) Zones() []models.DeliveryZone {
  return zones
}

func (c *Catalog) ZoneByIndex(index int) (models.DeliveryZone, bool) {
  if index < 1 || index > len(zones) {
    return models.DeliveryZone{}, false
  }
  return zones[index-1], true
}
