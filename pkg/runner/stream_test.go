package runner_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yaklabco/goswap/pkg/datatree"
	"github.com/yaklabco/goswap/pkg/runner"
	"github.com/yaklabco/goswap/pkg/swap"
	"github.com/yaklabco/goswap/pkg/template"
)

func mustTemplate(t *testing.T, raw string) template.Template {
	t.Helper()
	tmpl, err := template.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return tmpl
}

func colorData() datatree.Node {
	return datatree.Branch{
		"color": datatree.Branch{
			"red":  datatree.Leaf("#ff0000"),
			"blue": datatree.Leaf("#0000ff"),
		},
	}
}

func TestSwap_Stream(t *testing.T) {
	t.Parallel()

	input := "color: <!color.red!>;\nbackground-color: <!color.blue!>;"
	want := "color: #ff0000;\nbackground-color: #0000ff;"

	// Tiny chunk sizes force suspension inside tokens and paths.
	for _, chunkSize := range []int{1, 2, 5, 64} {
		sc := swap.NewScanner(mustTemplate(t, "<! . !>"), colorData())
		var out strings.Builder

		bytesIn, bytesOut, err := runner.Swap(context.Background(), strings.NewReader(input), &out, sc, chunkSize)
		if err != nil {
			t.Fatalf("chunk size %d: Swap error: %v", chunkSize, err)
		}
		if out.String() != want {
			t.Errorf("chunk size %d: output = %q, want %q", chunkSize, out.String(), want)
		}
		if bytesIn != int64(len(input)) {
			t.Errorf("chunk size %d: bytesIn = %d, want %d", chunkSize, bytesIn, len(input))
		}
		if bytesOut != int64(len(want)) {
			t.Errorf("chunk size %d: bytesOut = %d, want %d", chunkSize, bytesOut, len(want))
		}
	}
}

func TestSwap_NonPositiveChunkSizeDefaults(t *testing.T) {
	t.Parallel()

	input := "x <!color.red!> y"
	want := "x #ff0000 y"

	// chunkSize <= 0 must fall back to the default buffer size, not spin
	// on zero-length reads.
	for _, chunkSize := range []int{0, -1} {
		sc := swap.NewScanner(mustTemplate(t, "<! . !>"), colorData())
		var out strings.Builder

		bytesIn, _, err := runner.Swap(context.Background(), strings.NewReader(input), &out, sc, chunkSize)
		if err != nil {
			t.Fatalf("chunk size %d: Swap error: %v", chunkSize, err)
		}
		if out.String() != want {
			t.Errorf("chunk size %d: output = %q, want %q", chunkSize, out.String(), want)
		}
		if bytesIn != int64(len(input)) {
			t.Errorf("chunk size %d: bytesIn = %d, want %d", chunkSize, bytesIn, len(input))
		}
	}
}

func TestSwap_TrailingPartialMatchFlushed(t *testing.T) {
	t.Parallel()

	sc := swap.NewScanner(mustTemplate(t, "<! . !>"), colorData())
	var out strings.Builder

	_, _, err := runner.Swap(context.Background(), strings.NewReader("tail <"), &out, sc, 4)
	if err != nil {
		t.Fatalf("Swap error: %v", err)
	}
	if out.String() != "tail <" {
		t.Errorf("output = %q, want %q", out.String(), "tail <")
	}
}

func TestSwap_UnterminatedDirective(t *testing.T) {
	t.Parallel()

	sc := swap.NewScanner(mustTemplate(t, "<! . !>"), colorData())
	var out strings.Builder

	_, _, err := runner.Swap(context.Background(), strings.NewReader("x <!color.red"), &out, sc, 4)
	if !errors.Is(err, swap.ErrUnterminatedDirective) {
		t.Errorf("error = %v, want ErrUnterminatedDirective", err)
	}
}

func TestSwap_ResolveErrorPropagates(t *testing.T) {
	t.Parallel()

	sc := swap.NewScanner(mustTemplate(t, "<! . !>"), colorData())
	var out strings.Builder

	_, _, err := runner.Swap(context.Background(), strings.NewReader("<!color.green!>"), &out, sc, 64)
	if !errors.Is(err, datatree.ErrUnknownKey) {
		t.Errorf("error = %v, want ErrUnknownKey", err)
	}
}

func TestSwap_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := swap.NewScanner(mustTemplate(t, "<! . !>"), colorData())
	var out strings.Builder

	_, _, err := runner.Swap(ctx, strings.NewReader("text"), &out, sc, 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
