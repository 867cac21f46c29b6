package nlp

import (
	"regexp"
	"strings"
)

var enumSeparators = regexp.MustCompile(`[-\s]+`)

// Fold приводит строку к виду для регистронезависимого сравнения.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ContainsFold сообщает, содержится ли needle в haystack без учёта регистра.
// Пустой needle совпадает с любой строкой, как strings.Contains.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// EnumKey нормализует значение перечисления: "Full-time", "full time" и
// "FULL_TIME" дают одинаковый ключ "full_time".
func EnumKey(s string) string {
	return enumSeparators.ReplaceAllString(Fold(s), "_")
}

// Tokens разбивает строку списка ("a, b,c") на непустые элементы.
func Tokens(list string) []string {
	var out []string
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
