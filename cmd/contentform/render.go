package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	contentform "github.com/goliatone/go-contentform"
	"github.com/goliatone/go-contentform/pkg/orchestrator"
	"github.com/goliatone/go-contentform/pkg/render"
	"github.com/goliatone/go-contentform/pkg/renderers/vanilla"
)

var renderCmd = &cobra.Command{
	Use:   "render <uid>",
	Short: "Render the HTML edit form of a content type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conf, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		recordPath, _ := flags.GetString("record")
		errorsPath, _ := flags.GetString("errors")
		presetPath, _ := flags.GetString("preset")
		action, _ := flags.GetString("action")
		method, _ := flags.GetString("method")
		stylesheet, _ := flags.GetString("stylesheet")
		output, _ := flags.GetString("output")

		registry, err := contentform.NewRegistry(contentform.RegistryOptions{
			Vanilla: []vanilla.Option{vanilla.WithStylesheetURL(stylesheet)},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		var options []orchestrator.Option
		if presetPath != "" {
			preset, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS("."), presetPath)
			if err != nil {
				return errors.WithStack(err)
			}
			options = append(options, orchestrator.WithTransformer(preset))
		}

		gen, err := newOrchestrator(ctx, conf, registry, options...)
		if err != nil {
			return err
		}

		uid := args[0]
		record, err := readRecord(recordPath)
		if err != nil {
			return err
		}
		mapped, err := readErrors(errorsPath, contentTypeFields(gen, uid))
		if err != nil {
			return err
		}

		out, err := gen.Generate(ctx, orchestrator.Request{
			UID:            uid,
			Renderer:       vanilla.Name,
			Record:         record,
			Errors:         mapped.Fields,
			DidCheckErrors: errorsPath != "",
			RenderOptions: render.RenderOptions{
				Action:     action,
				Method:     method,
				FormErrors: mapped.Form,
			},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		if output == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return errors.WithStack(err)
		}
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().String("record", "", "JSON file holding the record being edited")
	renderCmd.Flags().String("errors", "", `JSON file of validation errors ({"field": ["message"]})`)
	renderCmd.Flags().String("preset", "", "JSON file of layout overrides per content type")
	renderCmd.Flags().String("action", "", "Form action URL")
	renderCmd.Flags().String("method", "POST", "Form method")
	renderCmd.Flags().String("stylesheet", "", "Stylesheet URL linked from the form")
	renderCmd.Flags().StringP("output", "o", "", "Output file (stdout if empty)")
}
