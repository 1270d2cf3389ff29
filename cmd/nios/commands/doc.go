// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package commands defines the nios CLI.
//
// Commands
//
//   - backup          Download a grid database backup
//   - restore         Upload a backup and restore the grid database
//   - csv-export      Export objects of one type as NIOS CSV
//   - csv-import      Upload a NIOS CSV file and start an import job
//   - csv-validate    Validate a NIOS CSV file offline
//   - member-config   Download a configuration file from a member
//   - get-log         Download a log archive from a member
//   - support-bundle  Download a support bundle from a member
//   - restart         Restart grid services
//   - restart-status  Show service restart progress
//   - fields          List the readable fields of a WAPI object
//   - max-version     Show the highest WAPI version of the Grid Manager
//
// # Configuration
//
// Every flag can be set through a NIOS_ environment variable, for example
// NIOS_GRID_MGR or NIOS_WAPI_VER, or through a YAML or TOML file passed
// with --config. The password is read from NIOS_PASSWORD, the config file
// key password, or an interactive prompt.
package commands
