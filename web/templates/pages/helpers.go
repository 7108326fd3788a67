package pages

import (
	"fmt"
	"html/template"
	"strconv"
)

// templateFuncs are shared by all page templates
var templateFuncs = template.FuncMap{
	"ksh":         formatKsh,
	"inc":         func(i int) int { return i + 1 },
	"mul":         func(a, b int) int { return a * b },
	"formValue":   getFormValue,
	"fieldErrors": getFieldErrors,
}

// formatKsh renders an amount with thousands separators, e.g. 12500 ->
// "12,500"
func formatKsh(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	return string(out)
}

// getFormValue returns the sticky form value for a field, or the default
func getFormValue(formData map[string]string, key, defaultValue string) string {
	if value, exists := formData[key]; exists && value != "" {
		return value
	}
	return defaultValue
}

// getFieldErrors returns the validation messages for a field
func getFieldErrors(errors map[string][]string, key string) []string {
	if errors == nil {
		return nil
	}
	return errors[key]
}

// pluralize returns singular for a count of one, plural otherwise
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// ItemsCountLabel renders the "N items" badge text
func ItemsCountLabel(count int) string {
	return fmt.Sprintf("%d %s", count, pluralize(count, "item", "items"))
}
