// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/netascode/go-nios"
	"github.com/netascode/go-nios/csvmodel"
)

func csvExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv-export",
		Short: "Export all objects of a type as NIOS CSV",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			object, err := a.required("object")
			if err != nil {
				return err
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			return client.CSVExport(cmd.Context(), object, a.v.GetString("filename"))
		}),
	}
	cmd.Flags().StringP("object", "o", "", "WAPI object to export, e.g. network (required)")
	cmd.Flags().StringP("filename", "f", "", "output filename (default: name offered by the Grid Manager)")
	return cmd
}

func csvImportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv-import",
		Short: "Upload a NIOS CSV file and start an import job",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			filename, err := a.required("filename")
			if err != nil {
				return err
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			task, err := client.CSVImport(cmd.Context(), filename, nios.CSVImportOptions{
				Operation:    a.v.GetString("operation"),
				OnError:      a.v.GetString("on-error"),
				UpdateMethod: a.v.GetString("update-method"),
				Separator:    a.v.GetString("separator"),
			})
			if err != nil {
				return err
			}

			if a.v.GetBool("wait") {
				task, err = client.WaitForCSVImport(cmd.Context(), task.Ref)
				if err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "import %d %s: %d processed, %d failed, %d warnings\n",
				task.ImportID, task.Status, task.LinesProcessed, task.LinesFailed, task.LinesWarning)
			if task.Status == nios.CSVImportFailed || task.Status == nios.CSVImportStopped {
				return fmt.Errorf("CSV import %d %s", task.ImportID, task.Status)
			}
			return nil
		}),
	}
	f := cmd.Flags()
	f.StringP("filename", "f", "", "NIOS CSV file to import (required)")
	f.String("operation", nios.CSVOperationInsert, "import operation [INSERT|UPDATE|REPLACE|DELETE|CUSTOM]")
	f.String("on-error", nios.CSVOnErrorStop, "action on error [STOP|CONTINUE]")
	f.String("update-method", nios.CSVUpdateOverride, "update method [OVERRIDE|MERGE]")
	f.String("separator", nios.CSVSeparatorComma, "field separator [COMMA|SEMICOLON|SPACE|TAB]")
	f.Bool("wait", false, "wait for the import job to finish")
	return cmd
}

func csvValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv-validate",
		Short: "Validate a NIOS CSV file without contacting the Grid Manager",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			filename, err := a.required("filename")
			if err != nil {
				return err
			}

			f, err := os.Open(filename)
			if err != nil {
				return err
			}
			defer f.Close()

			counts := make(map[string]int)
			dec := csvmodel.NewDecoder(f)
			for {
				rec, err := dec.Decode()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return fmt.Errorf("%s: %w", filename, err)
				}
				counts[rec.Tag()]++
			}

			out := cmd.OutOrStdout()
			for _, tag := range csvmodel.Tags() {
				if n := counts[tag]; n > 0 {
					fmt.Fprintf(out, "%s: %d\n", tag, n)
				}
			}
			a.log.Info("CSV file is valid", zap.String("file", filename))
			return nil
		}),
	}
	cmd.Flags().StringP("filename", "f", "", "NIOS CSV file to validate (required)")
	return cmd
}
