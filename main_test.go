package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgnsrekt/stutter/internal/locale"
	"github.com/dgnsrekt/stutter/internal/options"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func TestSourceFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("# Notes\n\nRead *this*."), 0o600); err != nil {
		t.Fatal(err)
	}

	text, name, err := loadText([]string{path})
	if err != nil {
		t.Fatalf("loadText() error = %v", err)
	}
	if name != path {
		t.Errorf("name = %q, want %q", name, path)
	}
	if want := "Notes\n\nRead this."; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestSourceFromDirectory(t *testing.T) {
	if _, err := sourceFromArg(t.TempDir()); err == nil {
		t.Error("expected an error for a directory")
	}
}

func TestSourceMissingFile(t *testing.T) {
	_, err := sourceFromArg(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSourceFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/post.html" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "<html><body><p>Hello <b>web</b></p></body></html>")
	}))
	defer srv.Close()

	text, _, err := loadText([]string{srv.URL + "/post.html"})
	if err != nil {
		t.Fatalf("loadText() error = %v", err)
	}
	if text != "Hello web" {
		t.Errorf("text = %q, want %q", text, "Hello web")
	}

	if _, err := sourceFromArg(srv.URL + "/gone.html"); err == nil {
		t.Error("expected an error for a 404")
	}
}

func TestSourceUnsupportedScheme(t *testing.T) {
	if _, err := sourceFromArg("ftp://example.com/book.txt"); err == nil {
		t.Error("expected an error for ftp")
	}
}

func TestMeasure(t *testing.T) {
	cfg := options.New(viper.New())
	s := measure("Hello there.\n\nSecond line", locale.Default(), cfg)

	if s.tokens != 5 {
		t.Errorf("tokens = %d, want 5", s.tokens)
	}
	if s.words != 4 {
		t.Errorf("words = %d, want 4", s.words)
	}
	if s.wpm != options.Defaults[options.WPM] {
		t.Errorf("wpm = %d", s.wpm)
	}
	if s.duration <= 0 {
		t.Errorf("duration = %s, want > 0", s.duration)
	}

	var buf bytes.Buffer
	if err := s.write(&buf, "notes.txt"); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"notes.txt", "words", "300 wpm", "en"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output is missing %q:\n%s", want, buf.String())
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	old := configFile
	t.Cleanup(func() { configFile = old })

	configFile = filepath.Join(t.TempDir(), "nested", "stutter.yml")
	if err := ensureConfigFile(); err != nil {
		t.Fatalf("ensureConfigFile() error = %v", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	store := options.New(v)
	if err := store.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	for name, want := range options.Defaults {
		if got := store.Int(name); got != want {
			t.Errorf("%s = %d, want %d", name, got, want)
		}
	}
	if !v.GetBool("context") || !v.GetBool("lookahead") {
		t.Error("context and lookahead should default to on")
	}
}

func TestEnsureConfigFileRejectsExtension(t *testing.T) {
	old := configFile
	t.Cleanup(func() { configFile = old })

	configFile = filepath.Join(t.TempDir(), "stutter.toml")
	if err := ensureConfigFile(); err == nil {
		t.Error("expected an error for a .toml config")
	}
}

func TestValidateOptionsSkipsConfigAndMan(t *testing.T) {
	key := options.Key(options.WPM)
	viper.Set(key, 10)
	t.Cleanup(func() { viper.Set(key, options.Defaults[options.WPM]) })

	if err := validateOptions(rootCmd); !errors.Is(err, options.ErrInvalidOption) {
		t.Errorf("root command: expected ErrInvalidOption, got %v", err)
	}
	if err := validateOptions(statsCmd); !errors.Is(err, options.ErrInvalidOption) {
		t.Errorf("stats command: expected ErrInvalidOption, got %v", err)
	}
	for _, cmd := range []*cobra.Command{configCmd, manCmd} {
		if err := validateOptions(cmd); err != nil {
			t.Errorf("%s should run with an invalid configuration, got %v", cmd.Name(), err)
		}
	}
}
