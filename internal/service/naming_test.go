package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"doc_ingest/internal/domain"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "invoice.pdf", want: "invoice.pdf"},
		{name: "accents", in: "Façture_Été.pdf", want: "Facture_Ete.pdf"},
		{name: "polish", in: "Umowa źródło.pdf", want: "Umowa zrod_o.pdf"},
		{name: "separators", in: "2024/03\\scan.pdf", want: "2024_03_scan.pdf"},
		{name: "non latin", in: "счет.pdf", want: "____.pdf"},
		{name: "whitespace", in: "  spaced.pdf ", want: "spaced.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.in))
		})
	}
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "Report.pdf", ObjectName(domain.SourceFile{Name: "Report", ExportMimeType: "application/pdf"}))
	assert.Equal(t, "Report.PDF", ObjectName(domain.SourceFile{Name: "Report.PDF", ExportMimeType: "application/pdf"}))
	assert.Equal(t, "Plan.xlsx", ObjectName(domain.SourceFile{
		Name:           "Plan",
		ExportMimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}))
	assert.Equal(t, "scan.pdf", ObjectName(domain.SourceFile{Name: "scan.pdf"}))
}

func TestTruncateMessage(t *testing.T) {
	assert.Equal(t, "short", truncateMessage("short"))
	assert.Len(t, []rune(truncateMessage(strings.Repeat("ż", 600))), maxMessageLength)
}
