package domain

import "strings"

// NormalizePhone приводит телефон к каноническому виду: остаются только цифры
// (дефисы и прочие разделители вырезаются). Нормализация применяется и перед
// сохранением, и перед любым поиском по телефону.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
