package parser

import (
  "regexp"
  "strings"

  set "github.com/deckarep/golang-set/v2"
  "github.com/spf13/cast"

  "github.com/elmerol/comanda/internal/models"
  "github.com/elmerol/comanda/pkg/stringer"
)

// Free-text quantity input is looser than the stepper: typing "15" is a
// legitimate order size, while the tap-based stepper stays clamped at 9.
const (
  MaxTypedQuantity   = 50
  MaxStepperQuantity = 9
)

var (
  regexProductCode = regexp.MustCompile(`^([a-z])\s*([1-9])$`)
  regexBareIndex   = regexp.MustCompile(`^[1-9]$`)
  regexQuantity    = regexp.MustCompile(`(?:^|\s)([0-9]{1,2})(?:\s|$)`)
)

// ProductRef points into the catalog: a category prefix letter plus a
// 1-based index within that category.
type ProductRef struct {
  CategoryCode string
  Index        int
}

// ParseProductRef understands "a3" style codes regardless of the active
// category, and bare digits "3" only while a category is active. Anything
// else is no match and the caller prompts again.
func ParseProductRef(text string, activeCategoryCode string) (ProductRef, bool) {
  t := stringer.Normalize(text)

  if groups := regexProductCode.FindStringSubmatch(t); groups != nil {
    return ProductRef{
      CategoryCode: groups[1],
      Index:        cast.ToInt(groups[2]),
    }, true
  }

  if regexBareIndex.MatchString(t) && activeCategoryCode != "" {
    return ProductRef{
      CategoryCode: activeCategoryCode,
      Index:        cast.ToInt(t),
    }, true
  }

  return ProductRef{}, false
}

// ExtractQuantity finds the first standalone 1-2 digit number in the text.
// Zero and anything above max are rejected, not clamped.
func ExtractQuantity(text string, max int) (int, bool) {
  t := stringer.Normalize(text)

  groups := regexQuantity.FindStringSubmatch(t)
  if groups == nil {
    return 0, false
  }

  quantity := cast.ToInt(groups[1])
  if quantity < 1 || quantity > max {
    return 0, false
  }

  return quantity, true
}

// FindMentioned matches the normalized name of each catalog item as a
// substring of the normalized input. Matches are de-duplicated by item
// code, not by name, in case two items render the same name.
func FindMentioned(text string, items []models.CatalogItem) []models.CatalogItem {
  t := stringer.Normalize(text)
  if t == "" {
    return nil
  }

  seen := set.NewThreadUnsafeSet[string]()
  found := make([]models.CatalogItem, 0, 1)

  for _, item := range items {
    name := stringer.Normalize(item.Name)

    if name == "" || !strings.Contains(t, name) {
      continue
    }
    if !seen.Add(item.Code) {
      continue
    }

    found = append(found, item)
  }

  return found
}
