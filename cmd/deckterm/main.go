// Command deckterm plays a deckui table in the terminal.
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/phanxgames/deckui"
	"github.com/phanxgames/deckui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

//go:embed table.yaml
var defaultLayout []byte

// config holds the CLI flags.
type config struct {
	layoutFile string
	envFile    string
	validate   bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	os.Exit(run(cfg))
}

// parseFlags parses command-line flags and returns a populated config.
func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	set := flag.NewFlagSet("deckterm", flag.ContinueOnError)
	set.SetOutput(out)
	set.StringVar(&cfg.layoutFile, "layout", "", "YAML table layout (default: built-in table)")
	set.StringVar(&cfg.envFile, "env", ".env", "Dotenv file with DECKUI_* settings, if present")
	set.BoolVar(&cfg.validate, "validate", false, "Load and mount the layout, then exit")
	if err := set.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func run(cfg config) int {
	if err := loadDotEnv(cfg.envFile); err != nil {
		fmt.Fprintf(os.Stderr, "deckterm: %v\n", err)
		return 1
	}
	ctrl, err := loadController(cfg.layoutFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckterm: %v\n", err)
		return 1
	}
	if cfg.validate {
		fmt.Printf("ok: %d decks, %d cards\n", ctrl.Decks().Len(), ctrl.Cards().Len())
		return 0
	}

	p := tea.NewProgram(tui.NewModel(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "deckterm: %v\n", err)
		return 1
	}
	return 0
}

// loadController builds a controller from DECKUI_* environment variables and
// mounts the layout at path, or the built-in table when path is empty.
func loadController(path string) (*deckui.Controller, error) {
	envCfg, err := deckui.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	data := defaultLayout
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
	}
	layout, err := deckui.LoadLayout(data)
	if err != nil {
		return nil, err
	}
	ctrl := deckui.NewController(envCfg)
	if err := layout.Mount(ctrl); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// loadDotEnv sets variables from a dotenv file without overriding ones
// already in the environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
