package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tab/holy-grind/pkg/grind"
	"github.com/tab/holy-grind/pkg/types"
)

func NewConvertCommand() *cobra.Command {
	var (
		lang    string
		jsonOut bool
		swap    bool
	)

	cmd := &cobra.Command{
		Use:     "convert FROM TO VALUE",
		Short:   "Convert a grind setting from one grinder to another",
		GroupID: gBasic,
		Long: `Convert a grind setting from one grinder to another.

FROM and TO are grinder ids (see 'grind list'). VALUE is a setting on FROM;
both '.' and ',' are accepted as the decimal separator.

Values outside FROM's calibrated range are clamped to it and the result is
marked as adjusted. With --swap, the result is converted back from TO to FROM.`,
		Example: `  grind convert comandante-c40 1zpresso-jx 24
  grind convert comandante-c40 1zpresso-jx 24,5 --lang ru
  grind convert comandante-c40 1zpresso-jx 24 --json`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBackend()
			if err != nil {
				return err
			}

			if lang != "" {
				lang = messages.Match(lang)
			}

			resp, err := b.Convert(args[0], args[1], args[2], lang, swap)
			if err != nil {
				return fmt.Errorf("failed to convert: %w", err)
			}

			if jsonOut {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printConversion(cmd.OutOrStdout(), resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&lang, "lang", "", "language of notes (en, ru); defaults to the configured language")
	f.BoolVar(&jsonOut, "json", false, "print the result as JSON")
	f.BoolVar(&swap, "swap", false, "swap the grinders and convert the result back")

	return cmd
}

// printConversion renders a response for a terminal. Outcomes that produce
// no setting are returned as errors carrying the localized note.
func printConversion(w io.Writer, resp *types.ConvertResponse) error {
	lang := resp.Lang
	if lang == "" {
		lang = messages.Fallback()
	}

	switch resp.Status {
	case grind.StatusPending:
		return fmt.Errorf("invalid setting %q for %s", resp.Input, resp.From)
	case grind.StatusInsufficient, grind.StatusIncompatible:
		return errors.New(resp.Message)
	}

	r := resp.Result
	fmt.Fprintf(w, "%s: %s %s\n", messages.T(lang, "converter.from"), resp.From, bold("%s", resp.Input))
	fmt.Fprintf(w, "%s: %s %s\n", messages.T(lang, "converter.to"), resp.To, color.New(color.Bold, color.FgGreen).Sprint(r.Display))
	fmt.Fprintf(w, "%s: %s - %s\n", messages.T(lang, "converter.range"), r.Min, r.Max)

	if !r.Exact {
		fmt.Fprintln(w, color.YellowString("%s", resp.Message))
	}

	return nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
