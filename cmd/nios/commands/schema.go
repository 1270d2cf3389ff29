// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func fieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <object>",
		Short: "List the readable fields of a WAPI object",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			fields, err := client.ObjectFields(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, f := range strings.Split(fields, ",") {
				if f != "" {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
			}
			return nil
		}),
	}
}

func maxVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "max-version",
		Short: "Show the highest WAPI version supported by the Grid Manager",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			version, err := client.MaxWapiVersion(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		}),
	}
}
