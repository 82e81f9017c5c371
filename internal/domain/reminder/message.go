package reminder

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMessageTemplate is the fallback when the admin never saved one.
const DefaultMessageTemplate = "Olá {{nome}}, seu {{servico}} é {{data}} às {{hora}}."

// Placeholders carries the booking data substituted into the template.
type Placeholders struct {
	Name    string
	Service string
	Date    string
	Time    string
}

// RenderMessage substitutes the four fixed tokens. Plain replacement only:
// no escaping, no recursion, unknown tokens stay verbatim.
func RenderMessage(template string, data Placeholders) string {
	msg := template
	if msg == "" {
		msg = DefaultMessageTemplate
	}
	msg = strings.ReplaceAll(msg, "{{nome}}", data.Name)
	msg = strings.ReplaceAll(msg, "{{servico}}", data.Service)
	msg = strings.ReplaceAll(msg, "{{data}}", data.Date)
	msg = strings.ReplaceAll(msg, "{{hora}}", data.Time)
	return msg
}

// FormatDate renders a booking date the way clients read it: dd/mm/yyyy.
func FormatDate(date time.Time) string {
	return fmt.Sprintf("%02d/%02d/%04d", date.Day(), int(date.Month()), date.Year())
}
