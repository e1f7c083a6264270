// Package money formatea importes para las vistas y el recibo PDF.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format devuelve el importe con separador de miles y símbolo, p. ej. "$1,000".
// Los importes con parte decimal se muestran con dos decimales ("$12.50").
func Format(amount decimal.Decimal) string {
	printer := message.NewPrinter(language.English)
	if amount.Equal(amount.Truncate(0)) {
		return printer.Sprintf("$%d", amount.IntPart())
	}
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("$%.2f", f)
}
