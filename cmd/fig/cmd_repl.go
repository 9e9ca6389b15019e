package main

import (
	stdjson "encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/hgranthorner/fig/calc"
	"github.com/hgranthorner/fig/json"
)

const (
	historyFile = ".fig_history"
	prompt      = "fig> "
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func newReplCmd() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse one line at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eval, err := evaluator(mode)
			if err != nil {
				return err
			}

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			histPath := ""
			if home, err := os.UserHomeDir(); err == nil {
				histPath = filepath.Join(home, historyFile)
				if f, err := os.Open(histPath); err == nil {
					line.ReadHistory(f)
					f.Close()
				}
			}

			fmt.Printf("fig %s repl, Ctrl+D exits\n", mode)
			for {
				input, err := line.Prompt(prompt)
				if err != nil {
					// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D
					break
				}
				if strings.TrimSpace(input) == "" {
					continue
				}
				line.AppendHistory(input)

				out, err := eval(input)
				if err != nil {
					fmt.Println(red(err.Error()))
					continue
				}
				fmt.Println(green(out))
			}

			if histPath != "" {
				if f, err := os.Create(histPath); err == nil {
					line.WriteHistory(f)
					f.Close()
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "json", "input language (json, calc)")

	return cmd
}

func evaluator(mode string) (func(string) (string, error), error) {
	switch mode {
	case "json":
		return func(input string) (string, error) {
			v, err := json.Parse(input)
			if err != nil {
				return "", err
			}
			out, err := stdjson.Marshal(v.Interface())
			if err != nil {
				return "", err
			}
			return string(out), nil
		}, nil
	case "calc":
		return func(input string) (string, error) {
			n, err := calc.Eval(input)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%d", n), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
}
