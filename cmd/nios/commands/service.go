// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/netascode/go-nios"
)

func restartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart grid services",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			return client.ServiceRestart(cmd.Context(), nios.ServiceRestartRequest{
				Groups:        a.list("groups"),
				Members:       a.list("members"),
				Mode:          a.v.GetString("mode"),
				RestartOption: a.v.GetString("option"),
				Services:      a.list("services"),
				UserName:      a.v.GetString("user-name"),
			})
		}),
	}
	f := cmd.Flags()
	f.StringSlice("groups", nil, "restart groups")
	f.StringSlice("members", nil, "members to restart")
	f.String("mode", "", "restart mode [GROUPED|SEQUENTIAL|SIMULTANEOUS]")
	f.String("option", nios.RestartIfNeeded, "restart option [RESTART_IF_NEEDED|FORCE_RESTART]")
	f.StringSlice("services", nil, "comma separated services to restart [ALL|DNS|DHCP|DHCPV4|DHCPV6]")
	f.String("user-name", "", "user name recorded for the restart")
	return cmd
}

func restartStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart-status",
		Short: "Show service restart progress",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			if a.v.GetBool("refresh") {
				if err := client.UpdateServiceStatus(cmd.Context(), a.v.GetString("services")); err != nil {
					return err
				}
			}

			statuses, err := client.GetServiceRestartStatus(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GRID\tNEEDED\tRESTARTING\tSUCCEEDED\tFAILURES\tTIMEOUTS\tFINISHED")
			for _, s := range statuses {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					s.Grid, s.NeededRestart, s.Restarting, s.Succeeded, s.Failures, s.Timeouts, s.Finished)
			}
			return w.Flush()
		}),
	}
	cmd.Flags().Bool("refresh", false, "request a status update before reading it")
	cmd.Flags().String("services", nios.ServiceAll, "services to refresh [ALL|DNS|DHCP|DHCPV4|DHCPV6]")
	return cmd
}
