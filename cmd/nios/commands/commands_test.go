// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/netascode/go-nios"
)

const gridRef = "grid/b25lLmNsdXN0ZXIkMA:Infoblox"

// newWapi returns a TLS server that answers login on the default WAPI version
func newWapi(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/wapi/v"+DefaultWapiVer+"/grid", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "infoblox" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"Error": "AdmConProtoError: Authentication failed", "code": "Client.Ibap.Proto", "text": "Authentication failed"}`)
			return
		}
		fmt.Fprintf(w, `[{"_ref": %q}]`, gridRef)
	})
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}

	srv := httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type result struct {
	stdout  string
	stderr  string
	prompts []string
	err     error
}

// run executes the CLI with a password prompt that answers "infoblox"
func run(t *testing.T, args ...string) result {
	t.Helper()

	var res result
	a := newApp()
	a.prompt = func(prompt string) (string, error) {
		res.prompts = append(res.prompts, prompt)
		return "infoblox", nil
	}
	a.clientOpts = []func(*nios.Client){nios.MaxRetries(0)}

	var stdout, stderr bytes.Buffer
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--log-file="}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	res.err = a.execute(root)
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func host(srv *httptest.Server) string {
	return srv.Listener.Addr().String()
}

func TestMaxVersion(t *testing.T) {
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v1.0/": func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.RawQuery, "_schema")
			fmt.Fprint(w, `{"supported_versions": ["1.0", "2.9", "2.12.2", "2.10"]}`)
		},
	})

	res := run(t, "-g", host(srv), "max-version")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "2.12.2\n", res.stdout)
	assert.Equal(t, []string{"Enter password for [admin]: "}, res.prompts)
}

func TestFields(t *testing.T) {
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.11/network": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"fields": [
				{"name": "network", "supports": "rwus"},
				{"name": "comment", "supports": "rwus"},
				{"name": "template", "supports": "w"}
			]}`)
		},
	})

	res := run(t, "-g", host(srv), "fields", "network")
	require.NoError(t, res.err, res.stderr)
	if diff := cmp.Diff([]string{"network", "comment"}, strings.Fields(res.stdout)); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingGridMgr(t *testing.T) {
	t.Setenv("NIOS_GRID_MGR", "")

	res := run(t, "max-version")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "grid manager is required")
	assert.Contains(t, res.stderr, "grid manager is required")
}

func TestErrorsBeforeSubcommandAreReported(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"backup", "--bogus"}, "unknown flag: --bogus"},
		{"missing config file", []string{"--config", filepath.Join(t.TempDir(), "nios.yaml"), "backup"}, "reading config"},
		{"unknown command", []string{"nosuchcmd"}, `unknown command "nosuchcmd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.args...)
			require.Error(t, res.err)
			assert.Contains(t, res.stderr, "Error: ")
			assert.Contains(t, res.stderr, tt.want)
		})
	}
}

func TestSubcommandErrorIsReportedOnce(t *testing.T) {
	t.Setenv("NIOS_GRID_MGR", "")

	res := run(t, "max-version")
	require.Error(t, res.err)
	assert.Equal(t, 1, strings.Count(res.stderr, "grid manager is required"), res.stderr)
	assert.NotContains(t, res.stderr, "Error: ")
}

func TestEnvironmentConfiguration(t *testing.T) {
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.12/network": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"fields": [{"name": "comment", "supports": "r"}]}`)
		},
		"/wapi/v2.12/grid": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, `[{"_ref": %q}]`, gridRef)
		},
	})
	t.Setenv("NIOS_GRID_MGR", host(srv))
	t.Setenv("NIOS_WAPI_VER", "v2.12")
	t.Setenv("NIOS_PASSWORD", "infoblox")

	res := run(t, "fields", "network")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "comment\n", res.stdout)
	assert.Empty(t, res.prompts)
}

func TestConfigFile(t *testing.T) {
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v1.0/": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"supported_versions": ["2.11", "2.12"]}`)
		},
	})

	config := filepath.Join(t.TempDir(), "nios.yaml")
	data := fmt.Sprintf("grid-mgr: %q\nusername: admin\npassword: infoblox\n", host(srv))
	require.NoError(t, os.WriteFile(config, []byte(data), 0o600))

	res := run(t, "--config", config, "max-version")
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "2.12\n", res.stdout)
	assert.Empty(t, res.prompts)
}

func TestBadCredentials(t *testing.T) {
	srv := newWapi(t, nil)

	res := run(t, "-g", host(srv), "-u", "operator", "max-version")
	require.Error(t, res.err)

	var reqErr *nios.RequestError
	require.True(t, errors.As(res.err, &reqErr))
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Equal(t, []string{"Enter password for [operator]: "}, res.prompts)
	assert.Contains(t, res.stderr, "Authentication failed")
}

func TestRestart(t *testing.T) {
	var body gjson.Result
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.11/" + gridRef: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "restartservices", r.URL.Query().Get("_function"))
			data, _ := io.ReadAll(r.Body)
			body = gjson.ParseBytes(data)
			fmt.Fprint(w, `{}`)
		},
	})

	res := run(t, "-g", host(srv), "restart",
		"--members", "ns1.example.com,ns2.example.com",
		"--services", "DNS",
		"--mode", nios.RestartModeSimultaneous)
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, `["ns1.example.com","ns2.example.com"]`, body.Get("members").Raw)
	assert.Equal(t, `["DNS"]`, body.Get("services").Raw)
	assert.Equal(t, nios.RestartIfNeeded, body.Get("restart_option").String())
	assert.Equal(t, nios.RestartModeSimultaneous, body.Get("mode").String())
	assert.False(t, body.Get("groups").Exists())
}

func TestRestartListsFromEnvironment(t *testing.T) {
	var body gjson.Result
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.11/" + gridRef: func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			body = gjson.ParseBytes(data)
			fmt.Fprint(w, `{}`)
		},
	})
	t.Setenv("NIOS_SERVICES", "DNS,DHCP")
	t.Setenv("NIOS_MEMBERS", "ns1.example.com, ns2.example.com")

	res := run(t, "-g", host(srv), "restart")
	require.NoError(t, res.err, res.stderr)

	assert.Equal(t, `["DNS","DHCP"]`, body.Get("services").Raw)
	assert.Equal(t, `["ns1.example.com","ns2.example.com"]`, body.Get("members").Raw)
}

func TestRestartInvalidMode(t *testing.T) {
	srv := newWapi(t, nil)

	res := run(t, "-g", host(srv), "restart", "--mode", "PARALLEL")
	require.ErrorIs(t, res.err, nios.ErrInvalidParameter)
}

func TestRestartStatus(t *testing.T) {
	var refreshed bool
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.11/" + gridRef: func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "requestrestartservicestatus", r.URL.Query().Get("_function"))
			refreshed = true
			fmt.Fprint(w, `{}`)
		},
		"/wapi/v2.11/restartservicestatus": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `[{"_ref": "restartservicestatus/ZG5z:Infoblox", "grid": "Infoblox",
				"needed_restart": 2, "restarting": 1, "success": 3, "failures": 0, "timeouts": 0, "finished": 3}]`)
		},
	})

	res := run(t, "-g", host(srv), "restart-status", "--refresh")
	require.NoError(t, res.err, res.stderr)
	assert.True(t, refreshed)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"GRID", "NEEDED", "RESTARTING", "SUCCEEDED", "FAILURES", "TIMEOUTS", "FINISHED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Infoblox", "2", "1", "3", "0", "0", "3"}, strings.Fields(lines[1]))
}

func TestRequiredFlags(t *testing.T) {
	srv := newWapi(t, nil)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"restore"}, "--filename is required"},
		{[]string{"csv-export"}, "--object is required"},
		{[]string{"csv-import"}, "--filename is required"},
		{[]string{"member-config"}, "--member is required"},
		{[]string{"get-log"}, "--member is required"},
		{[]string{"support-bundle"}, "--member is required"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			res := run(t, append([]string{"-g", host(srv)}, tt.args...)...)
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tt.want)
			assert.Empty(t, res.prompts)
		})
	}
}

func TestRestoreInvalidMode(t *testing.T) {
	res := run(t, "-g", "gm.example.com", "restore", "-f", "grid.bak", "-m", "FAST")
	require.ErrorIs(t, res.err, nios.ErrInvalidParameter)
	assert.Empty(t, res.prompts)
}

func TestCSVValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dhcp.csv")
	content := `header-networkview,name*
networkview,lab
header-network,address*,netmask*,network_view,EA-Site
network,10.0.0.0,255.255.255.0,lab,HQ
network,10.0.1.0,255.255.255.0,lab,HQ
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	res := run(t, "csv-validate", "-f", file)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, "network: 2\nnetworkview: 1\n", res.stdout)
	assert.Empty(t, res.prompts)
}

func TestCSVValidateInvalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dhcp.csv")
	content := "header-ipv6network,address*,cidr\nipv6network,10.0.0.0,64\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	res := run(t, "csv-validate", "-f", file)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "line 2")
	assert.Contains(t, res.err.Error(), "is not an IPv6 address")
}

func TestMemberConfigDownload(t *testing.T) {
	var calls []string
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.11/fileop": func(w http.ResponseWriter, r *http.Request) {
			fn := r.URL.Query().Get("_function")
			calls = append(calls, fn)
			data, _ := io.ReadAll(r.Body)
			if fn == "getmemberdata" {
				assert.Equal(t, nios.MemberDHCPConfig, gjson.GetBytes(data, "type").String())
				assert.Equal(t, "ns1.example.com", gjson.GetBytes(data, "member").String())
				fmt.Fprintf(w, `{"token": "tok", "url": "https://%s/http_direct_file_io/req_id-DOWNLOAD-1/dhcpd.conf"}`, r.Host)
				return
			}
			fmt.Fprint(w, `{}`)
		},
		"/http_direct_file_io/req_id-DOWNLOAD-1/dhcpd.conf": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "subnet 10.0.0.0 netmask 255.255.255.0 {}\n")
		},
	})

	file := filepath.Join(t.TempDir(), "dhcpd.conf")
	res := run(t, "-g", host(srv), "member-config", "-m", "ns1.example.com", "-t", nios.MemberDHCPConfig, "-f", file)
	require.NoError(t, res.err, res.stderr)
	assert.Equal(t, []string{"getmemberdata", "downloadcomplete"}, calls)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "subnet 10.0.0.0")
}

func TestCSVImportWait(t *testing.T) {
	srv := newWapi(t, map[string]http.HandlerFunc{
		"/wapi/v2.11/fileop": func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("_function") {
			case "uploadinit":
				fmt.Fprintf(w, `{"token": "up", "url": "https://%s/http_direct_file_io/req_id-UPLOAD-1/import.csv"}`, r.Host)
			case "csv_import":
				fmt.Fprint(w, `{"csv_import_task": {"_ref": "csvimporttask/ZG5z:3", "import_id": 3, "status": "PENDING"}}`)
			}
		},
		"/http_direct_file_io/req_id-UPLOAD-1/import.csv": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{}`)
		},
		"/wapi/v2.11/csvimporttask/ZG5z:3": func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"_ref": "csvimporttask/ZG5z:3", "import_id": 3, "status": "FAILED", "lines_processed": 4, "lines_failed": 4}`)
		},
	})

	file := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(file, []byte("header-networkview,name*\nnetworkview,lab\n"), 0o600))

	res := run(t, "-g", host(srv), "csv-import", "-f", file, "--wait")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "CSV import 3 FAILED")
	assert.Equal(t, "import 3 FAILED: 4 processed, 4 failed, 0 warnings\n", res.stdout)
}
