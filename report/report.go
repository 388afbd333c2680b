// Package report renders analyses for terminals and scripts.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/recurrence/batch"
	"github.com/katalvlaran/recurrence/recurrence"
	"github.com/katalvlaran/recurrence/shape"
	"github.com/katalvlaran/recurrence/store"
)

// ErrUnknownFormat indicates an output format other than text, styled or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the renderer.
type Format string

const (
	// Text is plain line-oriented output.
	Text Format = "text"
	// Styled is boxed, coloured terminal output.
	Styled Format = "styled"
	// JSON is one JSON document per call.
	JSON Format = "json"
)

// ParseFormat validates s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, Styled, JSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

const rule = "=================================================="

var bannerLines = []string{
	"Recurrence Relation Solver",
	"Solves recurrence relations of the form:",
	"- Dividing function: T(n) = aT(n/b) + f(n)",
	"- Decreasing function: T(n) = aT(n-b) + f(n)",
	"Enter the full recurrence equation and select",
	"the notation you want (Big O, Ω, or Θ)",
}

var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	boundStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder).
	Padding(0, 1)

// Banner writes the interactive greeting.
func Banner(w io.Writer, f Format) error {
	if f == Styled {
		body := titleStyle.Render(bannerLines[0]) + "\n" + strings.Join(bannerLines[1:], "\n")
		_, err := fmt.Fprintln(w, boxStyle.Render(body))
		return err
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("          " + bannerLines[0] + "\n")
	b.WriteString(rule + "\n")
	for _, l := range bannerLines[1:4] {
		b.WriteString(l + "\n")
	}
	b.WriteString(rule + "\n")
	for _, l := range bannerLines[4:] {
		b.WriteString(l + "\n")
	}
	b.WriteString(rule + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// NotationMenu is the prompt listing menu digits for ParseNotation.
const NotationMenu = "Select notation:\n1. Big O (Upper bound)\n2. Big Ω (Lower bound)\n3. Big Θ (Tight bound)\n"

type resultDoc struct {
	ID       string `json:"id,omitempty"`
	Equation string `json:"equation"`
	Method   string `json:"method"`
	Bound    string `json:"bound"`
	Case     string `json:"case"`
	Notation string `json:"notation"`
	Error    string `json:"error,omitempty"`
}

func docOf(res recurrence.Result) resultDoc {
	return resultDoc{
		Equation: res.Equation,
		Method:   res.Method,
		Bound:    res.Bound,
		Case:     res.Case.String(),
		Notation: string(res.Notation),
	}
}

// Result writes one analysis.
func Result(w io.Writer, f Format, res recurrence.Result) error {
	switch f {
	case JSON:
		return writeJSON(w, docOf(res))
	case Styled:
		_, err := fmt.Fprintln(w, boxStyle.Render(styledResult(res)))
		return err
	}

	_, err := fmt.Fprintf(w, "%s\nRESULT:\n%s%s\n", rule, plainResult(res), rule)
	return err
}

func plainResult(res recurrence.Result) string {
	return fmt.Sprintf("Recurrence equation: %s\nMethod used: %s\nSolution: T(n) = %s\n",
		res.Equation, res.Method, res.Bound)
}

func styledResult(res recurrence.Result) string {
	return strings.Join([]string{
		titleStyle.Render("RESULT"),
		labelStyle.Render("Recurrence equation: ") + res.Equation,
		labelStyle.Render("Method used: ") + res.Method,
		labelStyle.Render("Solution: ") + boundStyle.Render("T(n) = "+res.Bound),
	}, "\n")
}

// Outcomes writes batch results in input order.
func Outcomes(w io.Writer, f Format, out []batch.Outcome) error {
	if f == JSON {
		docs := make([]resultDoc, len(out))
		for i, o := range out {
			if o.Err != nil {
				docs[i] = resultDoc{Equation: o.Item.Equation, Error: o.Err.Error()}
				continue
			}
			docs[i] = docOf(o.Result)
		}
		return writeJSON(w, docs)
	}

	for _, o := range out {
		var line string
		switch {
		case o.Err != nil && f == Styled:
			line = fmt.Sprintf("%3d. %s  %s", o.Index+1, o.Item.Equation, errorStyle.Render("error: "+o.Err.Error()))
		case o.Err != nil:
			line = fmt.Sprintf("%3d. %s  error: %s", o.Index+1, o.Item.Equation, o.Err)
		case f == Styled:
			line = fmt.Sprintf("%3d. %s  %s  %s", o.Index+1, o.Result.Equation,
				boundStyle.Render(o.Result.Bound), labelStyle.Render("["+o.Result.Method+"]"))
		default:
			line = fmt.Sprintf("%3d. %s  %s  [%s]", o.Index+1, o.Result.Equation, o.Result.Bound, o.Result.Method)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// History writes stored entries.
func History(w io.Writer, f Format, entries []store.Entry) error {
	if f == JSON {
		if entries == nil {
			entries = []store.Entry{}
		}
		return writeJSON(w, entries)
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "no analyses recorded")
		return err
	}
	for _, e := range entries {
		when := e.CreatedAt.Format("2006-01-02 15:04:05")
		if f == Styled {
			when = labelStyle.Render(when)
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s  [%s]\n", when, e.Equation, e.Bound, e.Method); err != nil {
			return err
		}
	}
	return nil
}

type shapeDoc struct {
	Description     string  `json:"description"`
	Kind            string  `json:"kind"`
	Exponent        float64 `json:"exponent"`
	LogPower        float64 `json:"log_power"`
	Base            float64 `json:"base"`
	CombinedWithLog bool    `json:"combined_with_log"`
}

// ShapeDoc is the JSON form of a classification, shared with the HTTP API.
func ShapeDoc(desc string) interface{} {
	s := shape.Classify(desc)
	return shapeDoc{
		Description:     shape.Normalize(desc),
		Kind:            s.Kind.String(),
		Exponent:        shape.PolynomialExponent(desc, s),
		LogPower:        s.LogPower,
		Base:            s.Base,
		CombinedWithLog: s.CombinedWithLog,
	}
}

// Shape writes the classification of desc.
func Shape(w io.Writer, f Format, desc string) error {
	if f == JSON {
		return writeJSON(w, ShapeDoc(desc))
	}
	_, err := fmt.Fprintf(w, "f(n) = %s: %s\n", shape.Normalize(desc), shape.Classify(desc))
	return err
}

// Error writes a failure in the selected format.
func Error(w io.Writer, f Format, err error) error {
	switch f {
	case JSON:
		return writeJSON(w, map[string]string{"error": err.Error()})
	case Styled:
		_, werr := fmt.Fprintln(w, errorStyle.Render("error: "+err.Error()))
		return werr
	}
	_, werr := fmt.Fprintln(w, "error:", err)
	return werr
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
