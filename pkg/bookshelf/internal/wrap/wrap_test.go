package wrap

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// Every rune is ten pixels wide.
func mono(s string) int {
	return utf8.RuneCountInString(s) * 10
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 100, nil},
		{"fits", "Dystopian novel", 200, []string{"Dystopian novel"}},
		{"breaks at space", "Dystopian novel", 100, []string{"Dystopian", "novel"}},
		{"keeps newlines", "a\n\nb", 100, []string{"a", "", "b"}},
		{"carriage returns", "a\r\nb\rc", 100, []string{"a", "b", "c"}},
		{"splits long word", "abcdefghij", 40, []string{"abcd", "efgh", "ij"}},
		{"long word after short", "hi abcdefgh", 40, []string{"hi", "abcd", "efgh"}},
		{"collapses spaces", "a   b", 100, []string{"a b"}},
		{"narrower than a rune", "ab", 5, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.text, tt.width, mono)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines(%q, %d) mismatch (-want +got):\n%s", tt.text, tt.width, diff)
			}
		})
	}
}

func TestLinesFitWidth(t *testing.T) {
	text := "History of humankind from the Stone Age to the present day"
	for _, line := range Lines(text, 120, mono) {
		assert.LessOrEqual(t, mono(line), 120, line)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Sapiens", Truncate("Sapiens", 70, mono))
	assert.Equal(t, "Brave N...", Truncate("Brave New World", 100, mono))
	assert.Equal(t, "...", Truncate("Brave New World", 20, mono))
	assert.Equal(t, "Straß...", Truncate("Straßenbahn", 80, mono))
}

func TestHeight(t *testing.T) {
	assert.Zero(t, Height(nil, 20, 6))
	assert.Equal(t, 20, Height([]string{"a"}, 20, 6))
	assert.Equal(t, 72, Height([]string{"a", "b", "c"}, 20, 6))
}
