package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	contentform "github.com/goliatone/go-contentform"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/picker"
	"github.com/goliatone/go-contentform/pkg/renderers/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [selected]",
	Short: "Choose a content type with the terminal feature picker",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		plugin, _ := cmd.Flags().GetString("plugin")

		registry, err := contentform.NewRegistry(contentform.RegistryOptions{
			TUI: []tui.Option{tui.WithOutput(cmd.ErrOrStderr())},
		})
		if err != nil {
			return errors.WithStack(err)
		}
		gen, err := newOrchestrator(ctx, conf, registry)
		if err != nil {
			return err
		}

		var selected string
		if len(args) == 1 {
			selected = args[0]
		}
		state := &picker.OpenState{}
		props := state.Bind(picker.Props{
			SelectedFeature: selected,
			Main:            plugin != "",
			Plugin:          plugin,
		})

		out, err := gen.GeneratePicker(ctx, orchestrator.PickerRequest{
			Props:    props,
			Renderer: tui.Name,
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
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().String("plugin", "", "Plugin name shown next to the selection of a main picker")
}
