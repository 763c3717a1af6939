package models

// Button is a quick-reply option. WhatsApp caps a message at three.
type Button struct {
  Id    string `json:"id"`
  Title string `json:"title"`
}

type ListRow struct {
  Id          string `json:"id"`
  Title       string `json:"title"`
  Description string `json:"description"`
}

type ListSection struct {
  Title string    `json:"title"`
  Rows  []ListRow `json:"rows"`
}
