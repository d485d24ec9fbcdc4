package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "unix line endings",
			text: "one\ntwo\nthree",
			want: []string{"one", "two", "three"},
		},
		{
			name: "windows line endings",
			text: "one\r\ntwo\r\nthree",
			want: []string{"one", "two", "three"},
		},
		{
			name: "classic mac line endings",
			text: "one\rtwo\rthree",
			want: []string{"one", "two", "three"},
		},
		{
			name: "blank lines are dropped",
			text: "one\n\n\ntwo\n",
			want: []string{"one", "two"},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "single line without terminator",
			text: "only",
			want: []string{"only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		delimiter string
		want      [][]string
	}{
		{
			name:      "comma separated",
			lines:     []string{"a,b,c", "d,e"},
			delimiter: ",",
			want:      [][]string{{"a", "b", "c"}, {"d", "e"}},
		},
		{
			name:      "line without delimiter is a single field",
			lines:     []string{"plain"},
			delimiter: ",",
			want:      [][]string{{"plain"}},
		},
		{
			name:      "empty fields are preserved",
			lines:     []string{"a,,c"},
			delimiter: ",",
			want:      [][]string{{"a", "", "c"}},
		},
		{
			name:      "empty delimiter keeps lines whole",
			lines:     []string{"abc"},
			delimiter: "",
			want:      [][]string{{"abc"}},
		},
		{
			name:      "no lines",
			lines:     nil,
			delimiter: ",",
			want:      [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFields(tt.lines, tt.delimiter))
		})
	}
}
