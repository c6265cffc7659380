package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	prefixtree "github.com/sarthakjha889/go-prefix-tree"
)

// cli carries the state shared by all subcommands.
type cli struct {
	config *viper.Viper
	fs     afero.Fs
	log    zerolog.Logger
}

func main() {
	cmd := newRootCommand(afero.NewOsFs())
	cobra.CheckErr(cmd.Execute())
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	return buildRootCmd(newCLI(fs))
}

func newCLI(fs afero.Fs) *cli {
	return &cli{
		config: viper.New(),
		fs:     fs,
		log:    zerolog.Nop(),
	}
}

func buildRootCmd(app *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prefixtree",
		Short:         "Store words in a prefix tree and look them up by prefix",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setupLogger(cmd.ErrOrStderr())
		},
	}

	// flags
	rootCmd.PersistentFlags().Bool("ignore-case", false, "Fold words to lower case before storing and looking them up.")
	rootCmd.PersistentFlags().Bool("normalise", false, "Strip accents before storing and looking up words.")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error).")

	// bind flags to config
	app.config.SetEnvPrefix("PREFIXTREE")
	app.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	app.config.AutomaticEnv()
	cobra.CheckErr(app.config.BindPFlags(rootCmd.PersistentFlags()))

	rootCmd.AddCommand(buildDemoCmd(app))
	rootCmd.AddCommand(buildQueryCmd(app))
	rootCmd.AddCommand(buildShellCmd(app))

	return rootCmd
}

func (c *cli) setupLogger(stderr io.Writer) error {
	level, err := zerolog.ParseLevel(c.config.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	c.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
	return nil
}

// newTree creates an empty tree configured from the flags.
func (c *cli) newTree() *prefixtree.Tree {
	t := prefixtree.New()
	if c.config.GetBool("ignore-case") {
		t.CaseInsensitive()
	}
	if c.config.GetBool("normalise") {
		t.WithNormalisation()
	}
	c.log.Debug().
		Bool("ignoreCase", c.config.GetBool("ignore-case")).
		Bool("normalise", c.config.GetBool("normalise")).
		Msg("created tree")
	return t
}

// load adds one word per line from path, or from stdin when path is empty.
// Blank lines are skipped.
func (c *cli) load(t *prefixtree.Tree, path string, stdin io.Reader) error {
	r := stdin
	if path != "" {
		f, err := c.fs.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open word list: %w", err)
		}
		defer f.Close()
		r = f
	}
	scanner := bufio.NewScanner(r)
	lines := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines++
		if !t.Add(line) {
			c.log.Warn().Str("word", line).Msg("word rejected")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	c.log.Debug().Str("source", path).Int("lines", lines).Int("stored", t.Len()).Msg("loaded word list")
	return nil
}
