package slug

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"News", "news"},
		{"News!!", "news"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"Symbols & Punctuation, removed.", "symbols-punctuation-removed"},
		{"MiXeD CaSe", "mixed-case"},
		{"multi---dash  --  input", "multi-dash-input"},
		{"123 Numbers 456", "123-numbers-456"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Generate(tc.title); got != tc.want {
			t.Errorf("Generate(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestGenerateCharset(t *testing.T) {
	titles := []string{
		"Hello World", "Crazy!!@#$%^Title", "   lots   of   space   ",
		"-leading and trailing-", "عنوان عربي English mix", "a—b–c",
	}

	for _, title := range titles {
		got := Generate(title)
		for _, r := range got {
			if !(r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Errorf("Generate(%q) produced forbidden rune %q in %q", title, r, got)
			}
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Generate(%q) = %q has a leading or trailing hyphen", title, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Generate(%q) = %q has a hyphen run", title, got)
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	titles := []string{"Hello World", "News!!", "multi---dash  input", "a b c"}
	for _, title := range titles {
		once := Generate(title)
		twice := Generate(once)
		if once != twice {
			t.Errorf("Generate not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}

func TestValid(t *testing.T) {
	valid := []string{"news", "hello-world", "a", "123", "n-1-2-3"}
	for _, s := range valid {
		if !Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "-news", "news-", "hello--world", "Hello", "with space", "münchen"}
	for _, s := range invalid {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
