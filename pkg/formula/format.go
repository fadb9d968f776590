package formula

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Comma renders a metric as a grouped integer ("26,000,000") for
// explanation strings.
func Comma(n float64) string {
	return printer.Sprintf("%d", int64(n))
}
