package format

import "github.com/leekchan/accounting"

var taka = accounting.Accounting{Symbol: "৳", Precision: 0, Thousand: ","}

// FormatTaka renders a whole-taka amount for relay payloads and admin
// views, e.g. 2220 -> "৳2,220".
func FormatTaka(amount int) string {
	return taka.FormatMoney(amount)
}
