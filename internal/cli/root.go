// internal/cli/root.go
//
// Command-line entrypoint.
//
// Responsibilities:
//   - Load .env (development convenience), the optional YAML config file and env vars.
//   - Apply the configured log level to the global zerolog logger.
//   - Register the serve / compare / candidates / config / version subcommands.

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/config"
)

// Version is set at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// app carries state shared by the subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	output  string
	cfg     config.Config
}

// NewRootCmd creates the root command with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "wordleaid",
		Short: "Wordle solving aid",
		Long: `wordleaid scores guesses against answers and narrows a word list
down to the words still consistent with the feedback seen so far.

Feedback is written as a tilestring, either as letters (Y hit, ? present,
_ absent) or as emoji blocks (🟩 🟨 ⬛). A guess record looks like SLOSH=Y___?.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./wordleaid.yaml or $HOME/.wordleaid/config.yaml)")
	pf.StringVarP(&a.output, "output", "o", "text", "Output format: text, json")
	pf.String("log-level", "info", "Log level (env: WORDLEAID_LOG_LEVEL or LOG_LEVEL)")
	pf.String("tiles", "blocks", "Tile rendering: blocks, alpha")
	pf.Int("length", 5, "Word length")
	pf.Bool("ignore-case", false, "Compare letters case-insensitively")
	pf.String("word-list", "accepted_words.txt", "Default word list name or path")

	bind(a.v, pf, map[string]string{
		"log_level":            "log-level",
		"aid.tiles":            "tiles",
		"aid.word_length":      "length",
		"aid.case_insensitive": "ignore-case",
		"aid.word_list":        "word-list",
	})

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newCompareCmd(a))
	rootCmd.AddCommand(newCandidatesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		os.Exit(1)
	}
}

// init reads every configuration source and decodes the result.
func (a *app) init() error {
	_ = godotenv.Load()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName("wordleaid")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".wordleaid"))
		}
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	return nil
}
