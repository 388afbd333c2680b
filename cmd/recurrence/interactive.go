package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/report"
)

const (
	exitWord       = "exit"
	equationPrompt = "\nEnter your recurrence relation (e.g., T(n)=2T(n/2)+n) or 'exit': "
	choicePrompt   = "Enter choice (1-3): "
	invalidChoice  = "Invalid choice. Please enter 1, 2, or 3."
)

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Solve relations one after another until 'exit'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := report.Banner(out, a.format); err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isTerminal(f) {
				return a.interactiveForm(cmd.Context(), out)
			}
			return a.interactiveLines(cmd.Context(), in, out)
		},
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// interactiveForm prompts with a huh form on a terminal.
func (a *app) interactiveForm(ctx context.Context, out io.Writer) error {
	notation := string(a.cfg.NotationSymbol())
	for {
		var equation string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Recurrence relation").
				Description("e.g. T(n)=2T(n/2)+n, or exit to quit").
				Value(&equation).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("enter an equation or exit")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Notation").
				Options(
					huh.NewOption("Big O (Upper bound)", string(recurrence.BigO)),
					huh.NewOption("Big Ω (Lower bound)", string(recurrence.BigOmega)),
					huh.NewOption("Big Θ (Tight bound)", string(recurrence.BigTheta)),
				).
				Value(&notation),
		))
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if isExit(equation) {
			return nil
		}
		a.solveAndReport(ctx, out, equation, recurrence.Notation(notation))
	}
}

// interactiveLines reads an equation line and a notation line per round.
func (a *app) interactiveLines(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, equationPrompt)
		if !sc.Scan() {
			return sc.Err()
		}
		equation := strings.TrimSpace(sc.Text())
		if isExit(equation) {
			return nil
		}
		if equation == "" {
			continue
		}

		fmt.Fprint(out, "\n"+report.NotationMenu)
		var n recurrence.Notation
		for {
			fmt.Fprint(out, choicePrompt)
			if !sc.Scan() {
				return sc.Err()
			}
			choice, err := recurrence.ParseNotation(strings.TrimSpace(sc.Text()))
			if err == nil {
				n = choice
				break
			}
			fmt.Fprintln(out, invalidChoice)
		}

		a.solveAndReport(ctx, out, equation, n)
	}
}

// solveAndReport prints the result or the error; the session continues either way.
func (a *app) solveAndReport(ctx context.Context, out io.Writer, equation string, n recurrence.Notation) {
	res, err := a.solve(ctx, equation, n)
	if err != nil {
		_ = report.Error(out, a.format, err)
		return
	}
	_ = report.Result(out, a.format, res)
}

func isExit(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), exitWord)
}
