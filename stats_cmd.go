package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dgnsrekt/stutter/internal/block"
	"github.com/dgnsrekt/stutter/internal/locale"
	"github.com/dgnsrekt/stutter/internal/options"
	"github.com/dgnsrekt/stutter/ui"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:     "stats [SOURCE]",
	Short:   "Show how long a text takes to read",
	Long:    paragraph(fmt.Sprintf("\n%s the words in a text and estimate the reading time with the current options.", keyword("Count"))),
	Example: paragraph("stutter stats notes.md\nstutter stats --wpm 500 -L de essay.txt"),
	Args:    cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		text, name, err := loadText(args)
		if err != nil {
			return err
		}

		id := localeID
		if id == "" {
			cfg, err := env.ParseAs[ui.Config]()
			if err != nil {
				return fmt.Errorf("error parsing config: %v", err)
			}
			id = cfg.Locale
		}

		s := measure(text, locale.Resolve(id), store)
		return s.write(os.Stdout, name)
	},
}

// textStats summarises a tokenized text.
type textStats struct {
	bytes    int
	tokens   int
	words    int
	locale   string
	wpm      int
	duration time.Duration
}

func measure(text string, params locale.Params, cfg *options.Store) textStats {
	opts := block.Options{
		WPM:           cfg.Int(options.WPM),
		MaxWordLength: cfg.Int(options.MaxWordLength),
	}
	b := block.Tokenize(text, params, opts)

	s := textStats{
		bytes:    len(text),
		tokens:   b.Len(),
		locale:   params.Tag.String(),
		wpm:      opts.WPM,
		duration: b.Duration(),
	}
	for _, w := range b.Words() {
		if !w.IsSpace() {
			s.words++
		}
	}
	return s
}

func (s textStats) write(w io.Writer, name string) error {
	rows := [][2]string{
		{"source", name},
		{"size", humanize.Bytes(uint64(s.bytes))}, //nolint:gosec
		{"words", humanize.Comma(int64(s.words))},
		{"tokens", humanize.Comma(int64(s.tokens))},
		{"locale", s.locale},
		{"speed", fmt.Sprintf("%d wpm", s.wpm)},
		{"reading time", s.duration.Round(time.Second).String()},
	}

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(labelStyle.Render(r[0]) + valueStyle.Render(r[1]) + "\n")
	}
	if _, err := fmt.Fprint(w, sb.String()); err != nil {
		return fmt.Errorf("unable to write to writer: %w", err)
	}
	return nil
}
