package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeLeavesSafeInput(t *testing.T) {
	inputs := []string{
		"safe-file.txt",
		"tab\tline\r\nnext",
		"Zażółć gęślą jaźń",
		"Привет, мир",
		"こんにちは世界",
		"مرحبا بالعالم",
		"שלום",
		"नमस्ते",
		"😀🎉👍🏻",
		"0123456789٠١٢٣",
	}
	for _, input := range inputs {
		if got := Sanitize(input); got != input {
			t.Fatalf("expected %q to remain untouched, got %q", input, got)
		}
	}
}

func TestSanitizeDropsControlCharacters(t *testing.T) {
	var b strings.Builder
	for r := rune(0); r < 0x20; r++ {
		b.WriteRune(r)
	}
	b.WriteRune(0x7f)
	b.WriteRune(0x85)
	b.WriteRune(0x9b)

	got := Sanitize("a" + b.String() + "z")
	if got != "a\t\n\rz" {
		t.Fatalf("expected only tab/LF/CR to survive, got %q", got)
	}
}

func TestSanitizeDropsFormattingAndPrivateUse(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c" +
		string(rune(0x00AD)) + "d" + string(rune(0xFEFF)) + "e" +
		string(rune(0xE000)) + "f" + string(rune(0xF8FF)) + "g" +
		string(rune(0x200D)) + "h" + string(rune(0x100000))
	if got := Sanitize(input); got != "abcdefgh" {
		t.Fatalf("expected formatting and private-use runes removed, got %q", got)
	}
}

func TestSanitizeDropsReplacementCharacters(t *testing.T) {
	input := "x\ufffdy\ufffcz"
	if got := Sanitize(input); got != "xyz" {
		t.Fatalf("expected U+FFFD and U+FFFC removed, got %q", got)
	}
}

func TestSanitizeDropsInvalidUTF8(t *testing.T) {
	if got := Sanitize("ok\xff\xfeok"); got != "okok" {
		t.Fatalf("expected invalid bytes removed, got %q", got)
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"bad\x1b[31m\npath",
		"mix\u200d\ufffd\u0007\tend",
		"\xff\xfe\x00",
		"emoji 👨‍👩‍👧 family",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		if twice := Sanitize(once); twice != once {
			t.Fatalf("Sanitize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}
