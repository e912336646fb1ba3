package template_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/goswap/pkg/template"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want [3]string
	}{
		{name: "simple", raw: "<! . !>", want: [3]string{"<!", ".", "!>"}},
		{name: "surrounding whitespace", raw: "  <! . !>  ", want: [3]string{"<!", ".", "!>"}},
		{name: "tabs between tokens", raw: "<!\t.\t!>", want: [3]string{"<!", ".", "!>"}},
		{name: "multi-space runs", raw: "<!    .    !>", want: [3]string{"<!", ".", "!>"}},
		{name: "asymmetric tokens", raw: ">>< . <<>", want: [3]string{">><", ".", "<<>"}},
		{name: "single-char tokens", raw: "{ / }", want: [3]string{"{", "/", "}"}},
		{name: "separator overlaps delimiters", raw: "<< < >>", want: [3]string{"<<", "<", ">>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl, err := template.Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.raw, err)
			}

			got := [3]string{tmpl.Start(), tmpl.Separator(), tmpl.End()}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse_SurroundingWhitespaceEquivalence(t *testing.T) {
	t.Parallel()

	a, err := template.Parse("  <! . !>  ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	b, err := template.Parse("<! . !>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if a != b {
		t.Errorf("templates differ: %v vs %v", a, b)
	}
}

func TestParse_TooFewTokens(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "<!", "<! .", "<!."} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			_, err := template.Parse(raw)
			if !errors.Is(err, template.ErrTooFewTokens) {
				t.Errorf("Parse(%q) error = %v, want ErrTooFewTokens", raw, err)
			}
		})
	}
}

func TestParse_TooManyTokens(t *testing.T) {
	t.Parallel()

	_, err := template.Parse("<! . !> extra")
	if !errors.Is(err, template.ErrTooManyTokens) {
		t.Errorf("error = %v, want ErrTooManyTokens", err)
	}
}

func TestParse_ErrorNamesRawString(t *testing.T) {
	t.Parallel()

	const raw = "<! ."
	_, err := template.Parse(raw)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), raw) {
		t.Errorf("error %q does not name the raw template %q", err.Error(), raw)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tmpl, err := template.Parse("  <!   .  !> ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := tmpl.String(); got != "<! . !>" {
		t.Errorf("String() = %q, want %q", got, "<! . !>")
	}
}
