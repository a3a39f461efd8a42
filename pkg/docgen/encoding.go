package docgen

import (
	"fmt"
	"unicode/utf8"
)

const maxErrorText = 40

// validateText 检查文本能否写入 XML 1.0：
// #x9 | #xA | #xD | [#x20-#xD7FF] | [#xE000-#xFFFD] | [#x10000-#x10FFFF]
func validateText(s string) error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || !isXMLChar(r) {
			if r == utf8.RuneError && size == 1 {
				r = rune(s[i])
			}
			return &EncodingError{Text: truncate(s), Offset: i, Rune: r}
		}
		i += size
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxErrorText {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxErrorText]) + "..."
}

// validateDocument 在写出任何字节之前检查全部文本
func validateDocument(doc *Document, extra ...string) error {
	for i, n := range doc.nodes {
		for _, text := range n.texts() {
			if err := validateText(text); err != nil {
				return fmt.Errorf("node %d (%s): %w", i, n.Kind(), err)
			}
		}
	}
	for _, text := range extra {
		if err := validateText(text); err != nil {
			return fmt.Errorf("document properties: %w", err)
		}
	}
	return nil
}
