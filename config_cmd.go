package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/dgnsrekt/stutter/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfig = `# locale used for punctuation timing, e.g. "en", "de-AT" (default from $LANG)
locale: ""
# show the words around the current one
context: true
# show the upcoming word under the current one
lookahead: true
# mouse support
mouse: false

# reading options, reloaded while stutter is running
reader:
  # words per minute
  wpm: 300
  # tokens jumped by each skip key press
  skipCount: 10
  # words shown slower after starting or skipping back
  slowStartCount: 5
  # split words longer than this many letters (0 never splits)
  maxWordLength: 0
`

var configCmd = &cobra.Command{
	Use:         "config",
	Hidden:      false,
	Short:       "Edit the stutter config file",
	Long:        paragraph(fmt.Sprintf("\n%s the stutter config file. We’ll use EDITOR to determine which editor to use. If the config file doesn't exist, it will be created. Reading options are picked up while stutter runs.", keyword("Edit"))),
	Example:     paragraph("stutter config\nstutter config --config path/to/config.yml"),
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipValidation: "true"},
	RunE: func(*cobra.Command, []string) error {
		if err := ensureConfigFile(); err != nil {
			return err
		}

		c, err := editor.Cmd("Stutter", configFile)
		if err != nil {
			return fmt.Errorf("unable to set config file: %w", err)
		}
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if err := c.Run(); err != nil {
			return fmt.Errorf("unable to run command: %w", err)
		}

		fmt.Println("Wrote config file to:", configFile)
		return nil
	},
}

func ensureConfigFile() error {
	if configFile == "" {
		configFile = viper.GetViper().ConfigFileUsed()
		if configFile == "" {
			return errors.New("no configuration file location found, use --config")
		}
		if err := os.MkdirAll(filepath.Dir(configFile), 0o755); err != nil { //nolint:gosec
			return fmt.Errorf("could not write configuration file: %w", err)
		}
	}

	configFile = utils.ExpandPath(configFile)
	if ext := path.Ext(configFile); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("'%s' is not a supported configuration type: use '%s' or '%s'", ext, ".yaml", ".yml")
	}

	if _, err := os.Stat(configFile); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(configFile), 0o700); err != nil {
			return fmt.Errorf("unable create directory: %w", err)
		}

		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("unable to create config file: %w", err)
		}
		defer func() { _ = f.Close() }()

		if _, err := f.WriteString(defaultConfig); err != nil {
			return fmt.Errorf("unable to write config file: %w", err)
		}
	} else if err != nil { // some other error occurred
		return fmt.Errorf("unable to stat config file: %w", err)
	}
	return nil
}
