package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	prefixtree "github.com/sarthakjha889/go-prefix-tree"
)

var shellCommands = []string{"add", "all", "clear", "get", "has", "help", "len", "quit", "rm", "tree"}

const shellHelp = `add WORD...   store words
rm WORD...    remove words
has WORD...   check that all words are stored
get [PREFIX]  list words starting with PREFIX
all           list all words
len           count words
tree          print the tree structure
clear         remove all words
quit          leave the shell`

func buildShellCmd(app *cli) *cobra.Command {
	shell := &cobra.Command{
		Use:   "shell",
		Short: "Starts an interactive shell on an in-memory prefix tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := app.newTree()
			if words, _ := cmd.Flags().GetString("words"); words != "" {
				if err := app.load(t, words, nil); err != nil {
					return err
				}
			}
			return app.shell(t)
		},
	}
	shell.Flags().String("words", "", "File with one word per line to load before the shell starts.")
	shell.Flags().String("history-file", "", "File to keep the shell history in.")
	cobra.CheckErr(app.config.BindPFlag("history-file", shell.Flags().Lookup("history-file")))
	return shell
}

func (c *cli) shell(t *prefixtree.Tree) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "prefixtree> ",
		HistoryFile:     c.config.GetString("history-file"),
		AutoComplete:    completer{tree: t},
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	s := &session{tree: t, out: rl.Stdout(), log: c.log}
	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("failed to read line: %w", err)
		}
		if s.exec(line) {
			return nil
		}
	}
}

// session executes shell lines against a tree.
type session struct {
	tree *prefixtree.Tree
	out  io.Writer
	log  zerolog.Logger
}

// exec runs one line and reports whether the shell should exit.
func (s *session) exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := fields[0], fields[1:]
	s.log.Debug().Str("command", name).Strs("args", args).Msg("exec")
	switch name {
	case "add":
		fmt.Fprintln(s.out, s.tree.AddAll(args...))
	case "rm":
		fmt.Fprintln(s.out, s.tree.RemoveAll(args...))
	case "has":
		fmt.Fprintln(s.out, s.tree.ContainsAll(args...))
	case "get":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		s.print(s.tree.Get(prefix))
	case "all":
		s.print(s.tree.GetAll())
	case "len":
		fmt.Fprintln(s.out, s.tree.Len())
	case "tree":
		fmt.Fprintln(s.out, s.tree)
	case "clear":
		s.tree.Clear()
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", name)
	}
	return false
}

func (s *session) print(words []string) {
	for _, w := range words {
		fmt.Fprintln(s.out, w)
	}
}

// completer completes shell command names and, after the command, stored words.
type completer struct {
	tree *prefixtree.Tree
}

func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	head := string(line[:pos])
	start := 0
	if i := strings.LastIndexFunc(head, unicode.IsSpace); i >= 0 {
		_, size := utf8.DecodeRuneInString(head[i:])
		start = i + size
	}
	word := head[start:]
	typed := utf8.RuneCountInString(word)

	if strings.TrimSpace(head[:start]) == "" {
		names := lo.Filter(shellCommands, func(name string, _ int) bool {
			return strings.HasPrefix(name, word)
		})
		return lo.Map(names, func(name string, _ int) []rune {
			return []rune(name)[typed:]
		}), typed
	}

	canonical := utf8.RuneCountInString(c.tree.Canonical(word))
	return lo.Map(c.tree.Get(word), func(match string, _ int) []rune {
		return []rune(match)[canonical:]
	}), typed
}
