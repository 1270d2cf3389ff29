// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

// Import actions
const (
	ImportInsert         = "I"
	ImportMerge          = "M"
	ImportOverride       = "O"
	ImportDelete         = "D"
	ImportInsertMerge    = "IM"
	ImportInsertOverride = "IO"
)

// Lease per client settings
const (
	OneLeasePerClient = "ONE_LEASE_PER_CLIENT"
	NoLimit           = "NO_LIMIT"
)

// Server association types of a DHCP range
const (
	AssociationNone       = "NONE"
	AssociationMember     = "MEMBER"
	AssociationFailover   = "FAILOVER"
	AssociationMSFailover = "MS_FAILOVER"
	AssociationMSServer   = "MS_SERVER"
)

// IPv6 address types
const (
	IPv6Address = "ADDRESS"
	IPv6Prefix  = "PREFIX"
	IPv6Both    = "BOTH"
)

// Fixed address match options
const (
	MatchMACAddress = "MAC_ADDRESS"
	MatchClientID   = "CLIENT_ID"
	MatchCircuitID  = "CIRCUIT_ID"
	MatchRemoteID   = "REMOTE_ID"
	MatchReserved   = "RESERVED"
	MatchDUID       = "DUID"
)

// Fingerprint types
const (
	FingerprintCustom   = "CUSTOM"
	FingerprintStandard = "STANDARD"
)

// Fingerprint protocols
const (
	ProtocolIPv4 = "IPV4"
	ProtocolIPv6 = "IPV6"
)

// Failover server types
const (
	FailoverGrid     = "GRID"
	FailoverExternal = "EXTERNAL"
)

// Extension column prefixes
const (
	PrefixOption      = "OPTION-"
	PrefixEA          = "EA-"
	PrefixEAInherited = "EAInherited-"
	PrefixAdminGroup  = "ADMGRP-"
)

// enums maps the enum tag option to its valid values
var enums = map[string][]string{
	"import_action": {
		ImportInsert, ImportMerge, ImportOverride,
		ImportDelete, ImportInsertMerge, ImportInsertOverride,
	},
	"lease_per_client": {OneLeasePerClient, NoLimit},
	"server_association": {
		AssociationNone, AssociationMember, AssociationFailover,
		AssociationMSFailover, AssociationMSServer,
	},
	"ipv6_address_type": {IPv6Address, IPv6Prefix, IPv6Both},
	"match_option":      {MatchMACAddress, MatchClientID, MatchCircuitID, MatchRemoteID, MatchReserved},
	"fingerprint_type":  {FingerprintCustom, FingerprintStandard},
	"protocol":          {ProtocolIPv4, ProtocolIPv6},
	"failover_server":   {FailoverGrid, FailoverExternal},
	"option_type": {
		"16-bit signed integer",
		"16-bit unsigned integer",
		"32-bit signed integer",
		"32-bit unsigned integer",
		"64-bit unsigned integer",
		"8-bit signed integer",
		"8-bit unsigned integer",
		"8-bit unsigned integer (1,2,4,8)",
		"array of 16-bit integer",
		"array of 16-bit unsigned integer",
		"array of 32-bit integer",
		"array of 32-bit unsigned integer",
		"array of 64-bit unsigned integer",
		"array of 8-bit integer",
		"array of 8-bit unsigned integer",
		"array of ip-address",
		"array of ip-address pair",
		"boolean",
		"boolean array of ip-address",
		"boolean-text",
		"domain-list",
		"domain-name",
		"encapsulated",
		"ip-address",
		"string",
		"text",
	},
}

// EnumValues returns the valid values of a named enum, or nil if unknown
func EnumValues(name string) []string {
	return enums[name]
}
