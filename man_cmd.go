package main

import (
	"fmt"

	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/spf13/cobra"
)

var manCmd = &cobra.Command{
	Use:                   "man",
	Short:                 "Generate the man page",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Hidden:                true,
	Args:                  cobra.NoArgs,
	Annotations:           map[string]string{skipValidation: "true"},
	RunE: func(*cobra.Command, []string) error {
		page, err := mcobra.NewManPage(1, rootCmd)
		if err != nil {
			return fmt.Errorf("unable to build man page: %w", err)
		}

		page = page.WithSection("Keys", "space play/pause, ←/h skip back, →/l skip ahead, p pause, r restart, q quit.")
		page = page.WithSection("Environment", "STUTTER_CONFIG_HOME, STUTTER_LOG_FILE, STUTTER_DEBUG, STUTTER_FRAME_RATE, STUTTER_SKIP_RATE and LANG.")
		fmt.Println(page.Build(roff.NewDocument()))
		return nil
	},
}
