// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
)

// ServiceRestartRequest scopes a grid service restart
//
// Zero values are omitted from the request; RestartOption defaults to
// RESTART_IF_NEEDED.
type ServiceRestartRequest struct {
	Groups        []string
	Members       []string
	Mode          string
	RestartOption string
	Services      []string
	UserName      string
}

// ServiceRestartStatus holds restart progress as reported by the Grid Manager
type ServiceRestartStatus struct {
	Ref             string
	Grid            string
	DHCPStatus      string
	DNSStatus       string
	ReportingStatus string

	Grouped       int64
	NeededRestart int64
	NoRestart     int64
	Offline       int64
	Restarting    int64
	Succeeded     int64
	Failures      int64
	Finished      int64
	Timeouts      int64
}

// ServiceRestart restarts grid services
//
// The request is posted to the grid object captured by Connect, so the
// session must be connected.
//
// Example:
//
//	err := client.ServiceRestart(ctx, nios.ServiceRestartRequest{
//	    Members:  []string{"ns1.example.com"},
//	    Services: []string{nios.ServiceDNS},
//	    Mode:     nios.RestartModeSimultaneous,
//	})
func (c *Client) ServiceRestart(ctx context.Context, r ServiceRestartRequest) error {
	gridRef := c.GridRef()
	if gridRef == "" {
		return invalidParam("grid_ref", "not connected, call Connect first")
	}

	if r.RestartOption == "" {
		r.RestartOption = RestartIfNeeded
	}
	if err := ValidateEnum("restart_option", r.RestartOption, ValidRestartOptions); err != nil {
		return err
	}
	if r.Mode != "" {
		if err := ValidateEnum("mode", r.Mode, ValidRestartModes); err != nil {
			return err
		}
	}
	for _, s := range r.Services {
		if err := ValidateEnum("services", s, ValidServices); err != nil {
			return err
		}
	}

	body := Body{}.Set("restart_option", r.RestartOption)
	if len(r.Groups) > 0 {
		body = body.Set("groups", r.Groups)
	}
	if len(r.Members) > 0 {
		body = body.Set("members", r.Members)
	}
	if r.Mode != "" {
		body = body.Set("mode", r.Mode)
	}
	if len(r.Services) > 0 {
		body = body.Set("services", r.Services)
	}
	if r.UserName != "" {
		body = body.Set("user_name", r.UserName)
	}

	if _, err := c.Post(ctx, gridRef, body, Function("restartservices")); err != nil {
		return err
	}

	c.logger.Info(ctx, "successfully restarted services",
		"services", strings.Join(r.Services, ","),
		"restart_option", r.RestartOption)
	return nil
}

// UpdateServiceStatus asks the Grid Manager to refresh restart status for
// the given service option (default: ALL)
func (c *Client) UpdateServiceStatus(ctx context.Context, services string) error {
	gridRef := c.GridRef()
	if gridRef == "" {
		return invalidParam("grid_ref", "not connected, call Connect first")
	}
	if services == "" {
		services = ServiceAll
	}
	if err := ValidateEnum("service_option", services, ValidServices); err != nil {
		return err
	}

	body := Body{}.Set("service_option", services)
	_, err := c.Post(ctx, gridRef, body, Function("requestrestartservicestatus"))
	return err
}

// GetServiceRestartStatus reads the current service restart status
func (c *Client) GetServiceRestartStatus(ctx context.Context) ([]ServiceRestartStatus, error) {
	res, err := c.Get(ctx, "restartservicestatus")
	if err != nil {
		return nil, err
	}

	var statuses []ServiceRestartStatus
	for _, r := range res.Array() {
		statuses = append(statuses, parseServiceRestartStatus(r))
	}
	return statuses, nil
}

func parseServiceRestartStatus(r gjson.Result) ServiceRestartStatus {
	return ServiceRestartStatus{
		Ref:             r.Get("_ref").String(),
		Grid:            r.Get("grid").String(),
		DHCPStatus:      r.Get("dhcp_status").String(),
		DNSStatus:       r.Get("dns_status").String(),
		ReportingStatus: r.Get("reporting_status").String(),
		Grouped:         r.Get("grouped").Int(),
		NeededRestart:   r.Get("needed_restart").Int(),
		NoRestart:       r.Get("no_restart").Int(),
		Offline:         r.Get("offline").Int(),
		Restarting:      r.Get("restarting").Int(),
		Succeeded:       r.Get("success").Int(),
		Failures:        r.Get("failures").Int(),
		Finished:        r.Get("finished").Int(),
		Timeouts:        r.Get("timeouts").Int(),
	}
}
