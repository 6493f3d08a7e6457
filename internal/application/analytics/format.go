package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter formatea importes con 2 decimales y separador de miles del locale configurado.
// pt-BR: 1.234,50 · en: 1,234.50
// El importe nunca pasa por float64: se parte de d.StringFixed(2).
type MoneyFormatter struct {
	printer    *message.Printer
	groupSep   string
	decimalSep string
}

// NewMoneyFormatter construye el formateador para un tag BCP 47 (ej. "pt-BR").
func NewMoneyFormatter(locale string) (*MoneyFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("analytics: locale %q inválido: %w", locale, err)
	}
	p := message.NewPrinter(tag)
	group, dec := separators(p)
	return &MoneyFormatter{printer: p, groupSep: group, decimalSep: dec}, nil
}

// separators extrae los separadores del locale formateando 1234.5 ("1,234.50", "1.234,50", ...).
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(1234.5, number.Scale(2)))
	i := strings.Index(sample, "234")
	j := strings.LastIndex(sample, "50")
	if !strings.HasPrefix(sample, "1") || i < 1 || j < i+3 {
		return ",", "."
	}
	return sample[1:i], sample[i+3 : j]
}

// Format redondea a 2 decimales y aplica el formato del locale.
func (f *MoneyFormatter) Format(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + f.group(intPart) + f.decimalSep + frac
}

// group agrupa la parte entera. Hasta int64 lo hace el printer (exacto para enteros);
// más allá agrupa de a 3 dígitos con el separador del locale.
func (f *MoneyFormatter) group(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return f.printer.Sprint(number.Decimal(n))
	}
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
