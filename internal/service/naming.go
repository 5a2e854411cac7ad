package service

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"doc_ingest/internal/domain"
)

const maxMessageLength = 500

var exportExtensions = map[string]string{
	"application/pdf": ".pdf",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
}

// SanitizeName turns a source file name into a storage key: accents are
// stripped, other non-ASCII runes and path separators become underscores.
func SanitizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	var sb strings.Builder
	sb.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case r == '/' || r == '\\':
			sb.WriteByte('_')
		case r > unicode.MaxASCII:
			sb.WriteByte('_')
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// ObjectName returns the storage key a source file is uploaded under.
// Drive-native documents get the extension of their export format.
func ObjectName(file domain.SourceFile) string {
	name := file.Name
	if ext, ok := exportExtensions[file.ExportMimeType]; ok {
		if !strings.EqualFold(path.Ext(name), ext) {
			name += ext
		}
	}
	return SanitizeName(name)
}

func isPDF(name string) bool {
	return strings.EqualFold(path.Ext(name), ".pdf")
}

// truncateMessage caps a message at maxMessageLength runes.
func truncateMessage(msg string) string {
	r := []rune(msg)
	if len(r) <= maxMessageLength {
		return msg
	}
	return string(r[:maxMessageLength])
}
