// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/netascode/go-nios"
)

func backupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Download a grid database backup",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}

			var opts []nios.BackupOption
			if a.v.GetBool("discovery-data") {
				opts = append(opts, nios.WithDiscoveryData())
			}
			filename := a.v.GetString("filename")
			if err := client.GridBackup(cmd.Context(), filename, opts...); err != nil {
				return err
			}
			a.log.Info("grid backup complete", zap.String("file", filename))
			return nil
		}),
	}
	cmd.Flags().StringP("filename", "f", "", "backup filename (default: name offered by the Grid Manager)")
	cmd.Flags().Bool("discovery-data", false, "include network discovery data")
	return cmd
}

func restoreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore the grid database from a backup file",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			filename, err := a.required("filename")
			if err != nil {
				return err
			}
			mode := a.v.GetString("mode")
			if err := nios.ValidateEnum("mode", mode, nios.ValidRestoreModes); err != nil {
				return err
			}

			client, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			return client.GridRestore(cmd.Context(), filename, mode, a.v.GetBool("keep"))
		}),
	}
	cmd.Flags().StringP("filename", "f", "", "backup file to restore (required)")
	cmd.Flags().StringP("mode", "m", nios.RestoreForced, "restore mode [NORMAL|FORCED|CLONE]")
	cmd.Flags().BoolP("keep", "k", false, "keep the existing Grid Manager IP instead of the one in the backup")
	return cmd
}
