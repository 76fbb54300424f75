package library

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"mis documentos.pdf", "mis_documentos.pdf"},
		{"../../etc/passwd", "passwd"},
		{"año 2025 (final).docx", "a__o_2025__final_.docx"},
		{"", "file"},
		{"...", "..."},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFilenameTruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 200) + ".pdf"
	got := sanitizeFilename(long)
	if len(got) > 100 {
		t.Errorf("sanitized name is %d bytes, want <= 100", len(got))
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("sanitized name %q lost its extension", got)
	}
}

func TestBuildStoragePath(t *testing.T) {
	orgID := primitive.NewObjectID()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	got := buildStoragePath(orgID, "reglas internas.pdf", now)
	want := "library/" + orgID.Hex() + "/1740830400000_reglas_internas.pdf"
	if got != want {
		t.Errorf("buildStoragePath = %q, want %q", got, want)
	}
}
