package compare

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"diffpage/internal/config"
)

func writeTestAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"reset.css", "diff.css", "dom.js", "diff.js"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("/* "+name+" */"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	from := writeFile(t, dir, "before.txt", "1\n2\n3\n")
	to := writeFile(t, dir, "after.txt", "1\n2b\n3\n")

	var trace bytes.Buffer
	cmp, err := New(from, to, config.Options{
		AssetDir:    writeTestAssets(t),
		Verbose:     true,
		TraceWriter: &trace,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := filepath.Join(dir, "diff.html")
	if err := cmp.Run(out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"<title>after.txt</title>",
		`class="left_diff_change"`,
		`class="right_diff_change"`,
		`class="lineno_q lineno_rightchange"`,
		"2b",
		"/* diff.js */",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	traceLines := strings.Count(trace.String(), "\n")
	if traceLines != 3 {
		t.Fatalf("trace has %d lines, want 3:\n%s", traceLines, trace.String())
	}
}

func TestRunUnknownLanguageStillRenders(t *testing.T) {
	dir := t.TempDir()
	cmp := NewFromText("blob.qqz94", "blob.qqz94",
		"\x01\x02 nonsense\nshared line\n",
		"\x01\x02 other nonsense\nshared line\n",
		config.Options{AssetDir: writeTestAssets(t)})

	out := filepath.Join(dir, "diff.html")
	if err := cmp.Run(out); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "shared line") {
		t.Fatalf("page does not contain the plain-rendered source")
	}
}

func TestNewReportsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	to := writeFile(t, dir, "after.txt", "x\n")
	missing := filepath.Join(dir, "missing.txt")

	_, err := New(missing, to, config.Options{AssetDir: writeTestAssets(t)})
	if err == nil {
		t.Fatalf("expected error for missing input file")
	}
	if !strings.Contains(err.Error(), missing) {
		t.Fatalf("error %q does not name the unreadable path", err)
	}
}

func TestRunMissingAssetWritesNothing(t *testing.T) {
	dir := t.TempDir()
	from := writeFile(t, dir, "before.txt", "a\n")
	to := writeFile(t, dir, "after.txt", "b\n")

	cmp, err := New(from, to, config.Options{AssetDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out := filepath.Join(dir, "diff.html")
	if err := cmp.Run(out); err == nil {
		t.Fatalf("expected error for missing assets")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output file written despite failed render")
	}
}

func TestRunContextMode(t *testing.T) {
	dir := t.TempDir()
	var fromLines, toLines []string
	for i := 0; i < 30; i++ {
		fromLines = append(fromLines, "padding-"+strings.Repeat("x", i%7))
		toLines = append(toLines, "padding-"+strings.Repeat("x", i%7))
	}
	toLines[15] = "edited-line-body"
	from := writeFile(t, dir, "before.txt", strings.Join(fromLines, "\n")+"\n")
	to := writeFile(t, dir, "after.txt", strings.Join(toLines, "\n")+"\n")

	var trace bytes.Buffer
	cmp, err := New(from, to, config.Options{
		AssetDir:     writeTestAssets(t),
		Context:      true,
		ContextLines: 3,
		Verbose:      true,
		TraceWriter:  &trace,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := cmp.Run(filepath.Join(dir, "diff.html")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	traceLines := strings.Count(trace.String(), "\n")
	if traceLines >= 30 {
		t.Fatalf("context mode kept %d pairs, expected a collapsed window", traceLines)
	}
}

func TestSplitLines(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	} {
		if got := len(splitLines(tc.in)); got != tc.want {
			t.Fatalf("splitLines(%q) returned %d lines, want %d", tc.in, got, tc.want)
		}
	}
}
