package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	contentform "github.com/goliatone/go-contentform"
	"github.com/goliatone/go-contentform/pkg/editform"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/renderers/tui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <uid>",
	Short: "Fill the edit form of a content type in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		recordPath, _ := flags.GetString("record")
		format, _ := flags.GetString("format")
		verbose, _ := flags.GetBool("events")

		registry, err := contentform.NewRegistry(contentform.RegistryOptions{
			TUI: []tui.Option{
				tui.WithOutput(cmd.ErrOrStderr()),
				tui.WithOutputFormat(tui.OutputFormat(format)),
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}
		gen, err := newOrchestrator(ctx, conf, registry)
		if err != nil {
			return err
		}

		record, err := readRecord(recordPath)
		if err != nil {
			return err
		}

		var onBlur editform.EventHandler
		if verbose {
			onBlur = func(e editform.Event) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s (%s) = %v\n", e.Name, e.Type, e.Value)
			}
		}

		out, err := gen.Generate(ctx, orchestrator.Request{
			UID:      args[0],
			Renderer: tui.Name,
			Record:   record,
			OnBlur:   onBlur,
		})
		if errors.Is(err, tui.ErrAborted) {
			return tui.ErrAborted
		}
		if err != nil {
			return errors.WithStack(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().String("record", "", "JSON file holding the record used as defaults")
	promptCmd.Flags().String("format", string(tui.OutputFormatJSON), "Output format: json, form or pretty")
	promptCmd.Flags().Bool("events", false, "Print every blur event to stderr")
}
