// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/netascode/go-nios"
	"github.com/netascode/go-nios/internal/logging"
)

// Defaults of the persistent flags
const (
	DefaultUsername   = "admin"
	DefaultWapiVer    = "2.11"
	DefaultLogFile    = "wapi.log"
	EnvPrefix         = "NIOS"
	passwordKey       = "password"
	passwordPromptFmt = "Enter password for [%s]: "
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	v      *viper.Viper
	log    *zap.Logger
	client *nios.Client

	// prompt reads a password without echo
	prompt func(prompt string) (string, error)

	// clientOpts are appended to the options built from flags
	clientOpts []func(*nios.Client)

	// logged is set once a subcommand failure has gone to the logger
	logged bool
}

func newApp() *app {
	return &app{
		v:      viper.New(),
		log:    zap.NewNop(),
		prompt: promptPassword,
	}
}

// Execute runs the nios command line
func Execute() error {
	a := newApp()
	return a.execute(newRootCmd(a))
}

// execute runs root and prints errors raised before any subcommand ran,
// such as unknown flags or an unreadable config file
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !a.logged {
		root.PrintErrln("Error:", err)
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "nios",
		Short:         "Infoblox NIOS WAPI utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.v.SetEnvPrefix(EnvPrefix)
			a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			a.v.AutomaticEnv()

			if configFile != "" {
				a.v.SetConfigFile(configFile)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config %s: %w", configFile, err)
				}
			}

			a.log = logging.New(logging.Options{
				Debug:   a.v.GetBool("debug"),
				File:    a.v.GetString("log-file"),
				Console: cmd.ErrOrStderr(),
			})
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.client != nil {
				return a.client.Close()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringP("grid-mgr", "g", "", "Infoblox NIOS Grid Manager IP/hostname (required)")
	pf.StringP("username", "u", DefaultUsername, "Infoblox NIOS username")
	pf.StringP("wapi-ver", "w", DefaultWapiVer, "Infoblox WAPI version")
	pf.String("cert", "", "client certificate file")
	pf.String("cert-key", "", "client certificate key file")
	pf.Bool("ssl-verify", false, "verify the Grid Manager certificate")
	pf.Bool("debug", false, "enable verbose logging")
	pf.String("log-file", DefaultLogFile, "rotating log file (empty disables)")
	pf.StringVar(&configFile, "config", "", "YAML or TOML config file")

	root.AddCommand(
		backupCmd(a),
		restoreCmd(a),
		csvExportCmd(a),
		csvImportCmd(a),
		csvValidateCmd(a),
		memberConfigCmd(a),
		getLogCmd(a),
		supportBundleCmd(a),
		restartCmd(a),
		restartStatusCmd(a),
		fieldsCmd(a),
		maxVersionCmd(a),
	)
	return root
}

// run wraps a subcommand so failures are logged before they surface
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err != nil {
			var reqErr *nios.RequestError
			if errors.As(err, &reqErr) {
				a.log.Error(reqErr.Error(), zap.String("detail", reqErr.DetailedError()))
			} else {
				a.log.Error(err.Error())
			}
			a.logged = true
		}
		_ = a.log.Sync()
		return err
	}
}

// connect builds a client from the flags and logs in to the Grid Manager
func (a *app) connect(ctx context.Context) (*nios.Client, error) {
	gridMgr := a.v.GetString("grid-mgr")
	if gridMgr == "" {
		return nil, errors.New("grid manager is required (--grid-mgr or NIOS_GRID_MGR)")
	}
	username := a.v.GetString("username")

	opts := []func(*nios.Client){
		nios.WapiVersion(a.v.GetString("wapi-ver")),
		nios.Username(username),
		nios.SSLVerify(a.v.GetBool("ssl-verify")),
		nios.WithLogger(logging.NewAdapter(a.log)),
	}

	if cert := a.v.GetString("cert"); cert != "" {
		opts = append(opts, nios.Certificate(cert))
		if key := a.v.GetString("cert-key"); key != "" {
			opts = append(opts, nios.CertificateKey(key))
		}
	} else {
		password := a.v.GetString(passwordKey)
		if password == "" {
			var err error
			password, err = a.prompt(fmt.Sprintf(passwordPromptFmt, username))
			if err != nil {
				return nil, fmt.Errorf("reading password: %w", err)
			}
		}
		opts = append(opts, nios.Password(password))
	}
	opts = append(opts, a.clientOpts...)

	client, err := nios.NewClient(gridMgr, opts...)
	if err != nil {
		return nil, err
	}
	a.client = client

	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	a.log.Info("connected to Infoblox grid manager", zap.String("grid_mgr", gridMgr))
	return client, nil
}

// required returns the value of a flag that must be set
func (a *app) required(name string) (string, error) {
	value := a.v.GetString(name)
	if value == "" {
		env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
		return "", fmt.Errorf("--%s is required (or %s)", name, env)
	}
	return value, nil
}

// list returns a comma separated flag as a slice
//
// Viper splits environment and config file strings on whitespace only, so
// NIOS_SERVICES=DNS,DHCP is split here.
func (a *app) list(name string) []string {
	var out []string
	for _, item := range a.v.GetStringSlice(name) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine(os.Stdin)
	}
	b, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readLine(r io.Reader) (string, error) {
	var line string
	if _, err := fmt.Fscanln(r, &line); err != nil {
		return "", err
	}
	return line, nil
}
