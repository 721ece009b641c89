package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Languages", "languages"},
		{"  Cloud & DevOps  ", "cloud-devops"},
		{"C++ / C#", "c-c"},
		{"--Front---End--", "front-end"},
		{"Go 1.24", "go-1-24"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.in))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, SplitLines("A\n\nB\n"))
	assert.Equal(t, []string{"A", "B"}, SplitLines("  A \r\n B\r\n"))
	assert.Equal(t, []string{}, SplitLines(""))
}

func TestSplitComma(t *testing.T) {
	assert.Equal(t, []string{"Go", "Postgres", "MinIO"}, SplitComma("Go, Postgres ,,MinIO"))
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "absent", values: nil, want: []string{}},
		{name: "newline text", values: []string{"A\n\nB\n"}, want: []string{"A", "B"}},
		{name: "json array", values: []string{`["A", " B ", ""]`}, want: []string{"A", "B"}},
		{name: "broken json falls back to text", values: []string{"[A\nB"}, want: []string{"[A", "B"}},
		{name: "repeated values", values: []string{"A", " ", "B"}, want: []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseList(tt.values, SplitLines))
		})
	}
}
