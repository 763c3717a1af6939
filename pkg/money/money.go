package money

import "github.com/leekchan/accounting"

// Menu prices are whole córdobas, no minor units.
var acc = accounting.Accounting{
  Symbol:    "C$",
  Precision: 0,
  Thousand:  ",",
}

func String(value int) string {
  return acc.FormatMoney(value)
}
