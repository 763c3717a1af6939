package models

type Category struct {
  Code        string `json:"code"`
  Key         string `json:"key"`
  Title       string `json:"title"`
  Description string `json:"description"`
}

type CatalogItem struct {
  Code     string `json:"code"`
  Name     string `json:"name"`
  Price    int    `json:"price"`
  Category string `json:"category"`
}

// AccompanimentRule describes the side choices attached to a category.
// First is always asked. Second is either fixed (recorded automatically)
// or chosen by the customer; both empty means the product goes straight
// from the first choice to quantity selection.
type AccompanimentRule struct {
  First  AccompanimentChoice  `json:"first"`
  Second *AccompanimentChoice `json:"second"`
  Fixed  string               `json:"fixed"`
}

type AccompanimentChoice struct {
  Prompt  string   `json:"prompt"`
  Options []string `json:"options"`
}

type DeliveryZone struct {
  Label string `json:"label"`
  Fee   int    `json:"fee"`
}
