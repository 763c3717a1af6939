package stringer

import (
  "html"
  "regexp"
  "strings"
  "unicode"

  "github.com/microcosm-cc/bluemonday"
  "golang.org/x/text/runes"
  "golang.org/x/text/transform"
  "golang.org/x/text/unicode/norm"
)

var (
  policy      = bluemonday.StrictPolicy()
  RegexSepSet = regexp.MustCompile(`\s+`)

  diacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func StripTags(s string) string {
  return strings.TrimSpace(policy.Sanitize(s))
}

// SanitizeString cleans customer free text (names, addresses) without
// changing its case or letters: tags stripped, entities unescaped,
// whitespace collapsed.
func SanitizeString(s string) string {
  s = policy.Sanitize(s)
  s = html.UnescapeString(s)
  s = RegexSepSet.ReplaceAllLiteralString(s, " ")
  s = strings.TrimSpace(s)

  return s
}

// StripDiacritics folds accented letters to their base form via canonical
// decomposition, so "cálala" and "calala" compare equal.
func StripDiacritics(s string) string {
  out, _, err := transform.String(diacritics, s)
  if err != nil {
    return s
  }
  return out
}

// Normalize is the canonical form used for all inbound text matching:
// trimmed, inner whitespace collapsed to single spaces, lowercased,
// diacritics stripped. Total on any input, empty in gives empty out.
func Normalize(s string) string {
  s = RegexSepSet.ReplaceAllLiteralString(s, " ")
  s = strings.TrimSpace(s)
  s = strings.ToLower(s)
  s = StripDiacritics(s)

  return s
}
