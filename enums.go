// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import "strings"

// Service restart modes
const (
	RestartModeGrouped      = "GROUPED"
	RestartModeSequential   = "SEQUENTIAL"
	RestartModeSimultaneous = "SIMULTANEOUS"
)

// Service restart options
const (
	RestartForce    = "FORCE_RESTART"
	RestartIfNeeded = "RESTART_IF_NEEDED"
)

// Services addressed by a restart or a status request
const (
	ServiceAll    = "ALL"
	ServiceDNS    = "DNS"
	ServiceDHCP   = "DHCP"
	ServiceDHCPv4 = "DHCPV4"
	ServiceDHCPv6 = "DHCPV6"
)

// Database restore modes
const (
	RestoreNormal = "NORMAL"
	RestoreForced = "FORCED"
	RestoreClone  = "CLONE"
)

// CSV import operations
const (
	CSVOperationInsert  = "INSERT"
	CSVOperationUpdate  = "UPDATE"
	CSVOperationReplace = "REPLACE"
	CSVOperationDelete  = "DELETE"
	CSVOperationCustom  = "CUSTOM"
)

// CSV import error handling
const (
	CSVOnErrorContinue = "CONTINUE"
	CSVOnErrorStop     = "STOP"
)

// CSV import update methods
const (
	CSVUpdateMerge    = "MERGE"
	CSVUpdateOverride = "OVERRIDE"
)

// CSV separators
const (
	CSVSeparatorComma     = "COMMA"
	CSVSeparatorSemicolon = "SEMICOLON"
	CSVSeparatorSpace     = "SPACE"
	CSVSeparatorTab       = "TAB"
)

// CSV import task states; COMPLETED, FAILED and STOPPED are terminal
const (
	CSVImportPending   = "PENDING"
	CSVImportStarted   = "STARTED"
	CSVImportCompleted = "COMPLETED"
	CSVImportFailed    = "FAILED"
	CSVImportStopped   = "STOPPED"
)

// HA node selection for log retrieval
const (
	NodeActive  = "ACTIVE"
	NodePassive = "PASSIVE"
)

// Log types served by get_log_files
const (
	LogTypeSyslog   = "SYSLOG"
	LogTypeAuditLog = "AUDITLOG"
	LogTypePtopLog  = "PTOPLOG"
	LogTypeOutbound = "OUTBOUND"
	LogTypeMSServer = "MSMGMTLOG"
)

// Member file types served by getmemberdata
const (
	MemberDNSCache          = "DNS_CACHE"
	MemberDNSConfig         = "DNS_CFG"
	MemberDHCPConfig        = "DHCP_CFG"
	MemberDHCPv6Config      = "DHCPV6_CFG"
	MemberTrafficCapture    = "TRAFFIC_CAPTURE_FILE"
	MemberDNSStats          = "DNS_STATS"
	MemberDNSRecursingCache = "DNS_RECURSING_CACHE"
)

// Valid values per enumeration
var (
	ValidRestartModes    = []string{RestartModeGrouped, RestartModeSequential, RestartModeSimultaneous}
	ValidRestartOptions  = []string{RestartForce, RestartIfNeeded}
	ValidServices        = []string{ServiceAll, ServiceDNS, ServiceDHCP, ServiceDHCPv4, ServiceDHCPv6}
	ValidRestoreModes    = []string{RestoreNormal, RestoreForced, RestoreClone}
	ValidCSVOperations   = []string{CSVOperationInsert, CSVOperationUpdate, CSVOperationReplace, CSVOperationDelete, CSVOperationCustom}
	ValidCSVOnError      = []string{CSVOnErrorContinue, CSVOnErrorStop}
	ValidCSVUpdateMethod = []string{CSVUpdateMerge, CSVUpdateOverride}
	ValidCSVSeparators   = []string{CSVSeparatorComma, CSVSeparatorSemicolon, CSVSeparatorSpace, CSVSeparatorTab}
	ValidNodeTypes       = []string{NodeActive, NodePassive}
	ValidLogTypes        = []string{LogTypeSyslog, LogTypeAuditLog, LogTypePtopLog, LogTypeOutbound, LogTypeMSServer}
	ValidMemberDataTypes = []string{
		MemberDNSCache, MemberDNSConfig, MemberDHCPConfig, MemberDHCPv6Config,
		MemberTrafficCapture, MemberDNSStats, MemberDNSRecursingCache,
	}
)

// ValidateEnum checks that value is one of valid
//
// Returns an InvalidParameterError naming param otherwise.
//
// Example:
//
//	if err := nios.ValidateEnum("mode", "FORCED", nios.ValidRestoreModes); err != nil {
//	    log.Fatal(err)
//	}
func ValidateEnum(param, value string, valid []string) error {
	for _, v := range valid {
		if value == v {
			return nil
		}
	}
	return invalidParam(param, "%q is not valid (valid values: %s)", value, strings.Join(valid, ", "))
}

// isTerminalImportStatus reports whether a CSV import task will not change anymore
func isTerminalImportStatus(status string) bool {
	switch status {
	case CSVImportCompleted, CSVImportFailed, CSVImportStopped:
		return true
	}
	return false
}
