package textutil

import "testing"

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no tabs", "plain", "plain"},
		{"leading tab", "\tx", "    x"},
		{"aligned stop", "ab\tc", "ab  c"},
		{"wide rune counts double", "你\tx", "你  x"},
		{"consecutive tabs", "a\t\tb", "a       b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandTabs(tt.text, DefaultTabWidth); got != tt.want {
				t.Fatalf("ExpandTabs(%q)=%q want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "abc", 3},
		{"wide runes", "你好", 4},
		{"combining mark", "e\u0301", 1},
		{"mixed ascii + cjk", "a你b", 4},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}
