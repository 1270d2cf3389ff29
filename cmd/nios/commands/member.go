// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"github.com/spf13/cobra"

	"github.com/netascode/go-nios"
)

func memberConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member-config",
		Short: "Download a configuration file from a grid member",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			member, err := a.required("member")
			if err != nil {
				return err
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			return client.MemberConfig(cmd.Context(), member, a.v.GetString("cfg-type"), a.v.GetString("filename"))
		}),
	}
	f := cmd.Flags()
	f.StringP("member", "m", "", "member to retrieve the file from (required)")
	f.StringP("cfg-type", "t", nios.MemberDNSConfig,
		"configuration type [DNS_CACHE|DNS_CFG|DHCP_CFG|DHCPV6_CFG|TRAFFIC_CAPTURE_FILE|DNS_STATS|DNS_RECURSING_CACHE]")
	f.StringP("filename", "f", "", "output filename (default: name offered by the Grid Manager)")
	return cmd
}

func getLogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-log",
		Short: "Download a log archive from a grid member",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			member, err := a.required("member")
			if err != nil {
				return err
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			return client.GetLogFiles(cmd.Context(), member, a.v.GetString("filename"), nios.LogFilesOptions{
				LogType:        a.v.GetString("log-type"),
				NodeType:       a.v.GetString("node-type"),
				IncludeRotated: a.v.GetBool("rotated"),
			})
		}),
	}
	f := cmd.Flags()
	f.StringP("member", "m", "", "member to retrieve logs from (required)")
	f.StringP("log-type", "t", nios.LogTypeSyslog, "log type [SYSLOG|AUDITLOG|PTOPLOG|OUTBOUND|MSMGMTLOG]")
	f.String("node-type", nios.NodeActive, "HA node [ACTIVE|PASSIVE]")
	f.Bool("rotated", false, "include rotated log files")
	f.StringP("filename", "f", "", "output filename (default: name offered by the Grid Manager)")
	return cmd
}

func supportBundleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support-bundle",
		Short: "Download a support bundle from a grid member",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			member, err := a.required("member")
			if err != nil {
				return err
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			return client.SupportBundle(cmd.Context(), member, a.v.GetString("filename"), nios.SupportBundleOptions{
				IncludeCoreFiles:   a.v.GetBool("core-files"),
				IncludeRotatedLogs: a.v.GetBool("rotated-logs"),
				LogFiles:           a.v.GetBool("log-files"),
			})
		}),
	}
	f := cmd.Flags()
	f.StringP("member", "m", "", "member to retrieve the bundle from (required)")
	f.Bool("core-files", false, "include core files")
	f.Bool("rotated-logs", false, "include rotated logs")
	f.Bool("log-files", false, "include log files")
	f.StringP("filename", "f", "", "output filename (default: name offered by the Grid Manager)")
	return cmd
}
