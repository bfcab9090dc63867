// Package walink строит deep-link-и wa.me с предзаполненным сообщением.
package walink

import (
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// SanitizePhone удаляет из номера все символы, кроме цифр.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Build возвращает ссылку вида https://wa.me/<digits>?text=<encoded message>.
// Пустое сообщение дает ссылку без параметра text (прямой контакт).
func Build(phone, message string) string {
	digits := SanitizePhone(phone)
	if message == "" {
		return baseURL + digits
	}

	return fmt.Sprintf("%s%s?text=%s", baseURL, digits, url.QueryEscape(message))
}
