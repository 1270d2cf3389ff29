// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package csvmodel

import (
	"net/netip"
	"time"
)

func init() {
	register(func() Record { return &GridDhcp{} })
	register(func() Record { return &MemberDhcp{} })
	register(func() Record { return &NetworkView{} })
	register(func() Record { return &NetworkContainer{} })
	register(func() Record { return &Network{} })
	register(func() Record { return &IPv6NetworkContainer{} })
	register(func() Record { return &IPv6Network{} })
	register(func() Record { return &SharedNetwork{} })
	register(func() Record { return &IPv6SharedNetwork{} })
	register(func() Record { return &DhcpRange{} })
	register(func() Record { return &IPv6DhcpRange{} })
	register(func() Record { return &FixedAddress{} })
	register(func() Record { return &IPv6FixedAddress{} })
	register(func() Record { return &DhcpFingerprint{} })
	register(func() Record { return &DhcpMacFilter{} })
	register(func() Record { return &MacFilterAddress{} })
	register(func() Record { return &OptionFilter{} })
	register(func() Record { return &OptionFilterMatchRule{} })
	register(func() Record { return &RelayAgentFilter{} })
	register(func() Record { return &DhcpFingerprintFilter{} })
	register(func() Record { return &OptionSpace{} })
	register(func() Record { return &IPv6OptionSpace{} })
	register(func() Record { return &OptionDefinition{} })
	register(func() Record { return &IPv6OptionDefinition{} })
	register(func() Record { return &DhcpFailoverAssociation{} })
}

var (
	optionOnly      = []string{PrefixOption}
	eaOnly          = []string{PrefixEA}
	eaAdmin         = []string{PrefixEA, PrefixAdminGroup}
	optionAdmin     = []string{PrefixOption, PrefixAdminGroup}
	optionEA        = []string{PrefixOption, PrefixEA}
	optionEAAdmin   = []string{PrefixOption, PrefixEA, PrefixAdminGroup}
	optionEAInherit = []string{PrefixOption, PrefixEA, PrefixEAInherited, PrefixAdminGroup}
)

// GridDhcp holds the grid wide DHCP properties
type GridDhcp struct {
	Authority                   *bool  `csv:"authority"`
	DomainName                  string `csv:"domain_name"`
	RecycleLeases               *bool  `csv:"recycle_leases"`
	IgnoreDhcpOptionListRequest *bool  `csv:"ignore_dhcp_option_list_request"`
	EnablePxeLeaseTime          *bool  `csv:"enable_pxe_lease_time"`
	PxeLeaseTime                *int64 `csv:"pxe_lease_time,positive"`
	Bootfile                    string `csv:"bootfile"`
	Bootserver                  string `csv:"bootserver"`
	Nextserver                  string `csv:"nextserver"`
	DenyBootp                   *bool  `csv:"deny_bootp"`
	EnableDdns                  *bool  `csv:"enable_ddns"`
	DdnsUseOption81             *bool  `csv:"ddns_use_option81"`
	DdnsServerAlwaysUpdates     *bool  `csv:"ddns_server_always_updates"`
	DdnsGenerateHostname        *bool  `csv:"ddns_generate_hostname"`
	DdnsTTL                     *int64 `csv:"ddns_ttl,positive"`
	RetryDdnsUpdates            *bool  `csv:"retry_ddns_updates"`
	DdnsRetryInterval           *int64 `csv:"ddns_retry_interval,positive"`
	EnableDhcpThresholds        *bool  `csv:"enable_dhcp_thresholds"`
	HighWaterMark               *int64 `csv:"high_water_mark,positive"`
	HighWaterMarkReset          *int64 `csv:"high_water_mark_reset,positive"`
	LowWaterMark                *int64 `csv:"low_water_mark,positive"`
	LowWaterMarkReset           *int64 `csv:"low_water_mark_reset,positive"`
	EnableEmailWarnings         *bool  `csv:"enable_email_warnings"`
	EnableSnmpWarnings          *bool  `csv:"enable_snmp_warnings"`
	EmailList                   string `csv:"email_list"`
	IPv6DomainNameServers       string `csv:"ipv6_domain_name_servers"`
	PingCount                   *int64 `csv:"ping_count,positive"`
	PingTimeout                 *int64 `csv:"ping_timeout,positive"`
	CaptureHostname             *bool  `csv:"capture_hostname"`
	EnableLeasequery            *bool  `csv:"enable_leasequery"`
	UpdateDNSOnLeaseRenewal     *bool  `csv:"update_dns_on_lease_renewal"`
	IPv6UpdateDNSOnLeaseRenewal *bool  `csv:"ipv6_update_dns_on_lease_renewal"`
	TxtRecordHandling           string `csv:"txt_record_handling"`
	LeaseScavengeTime           *int64 `csv:"lease_scavenge_time,positive"`
	FailoverPort                *int64 `csv:"failover_port,positive"`
	EnableFingerprint           *bool  `csv:"enable_fingerprint"`
	IPv6EnableDdns              *bool  `csv:"ipv6_enable_ddns"`
	IPv6EnableOptionFqdn        *bool  `csv:"ipv6_enable_option_fqdn"`
	IPv6DdnsServerAlwaysUpdates *bool  `csv:"ipv6_ddns_server_always_updates"`
	IPv6GenerateHostname        *bool  `csv:"ipv6_generate_hostname"`
	IPv6DdnsDomainname          string `csv:"ipv6_ddns_domainname"`
	IPv6DdnsTTL                 *int64 `csv:"ipv6_ddns_ttl,positive"`
	PreferredLifetime           *int64 `csv:"preferred_lifetime,positive"`
	ValidLifetime               *int64 `csv:"valid_lifetime,positive"`
	IPv6DomainName              string `csv:"ipv6_domain_name"`
	IPv6TxtRecordHandling       string `csv:"ipv6_txt_record_handling"`
	IPv6CaptureHostname         *bool  `csv:"ipv6_capture_hostname"`
	IPv6RecycleLeases           *bool  `csv:"ipv6_recycle_leases"`
	IPv6EnableRetryUpdates      *bool  `csv:"ipv6_enable_retry_updates"`
	IPv6RetryUpdatesInterval    *int64 `csv:"ipv6_retry_updates_interval,positive"`
	DdnsDomainname              string `csv:"ddns_domainname"`
	LeasesPerClientSettings     string `csv:"leases_per_client_settings,enum=lease_per_client"`
	IgnoreClientIdentifier      *bool  `csv:"ignore_client_identifier"`
	DisableAllNacFilters        *bool  `csv:"disable_all_nac_filters"`
	FormatLogOption82           string `csv:"format_log_option_82"`
	V6LeasesScavengingEnabled   *bool  `csv:"v6_leases_scavenging_enabled"`
	V6LeasesScavengingGrace     *int64 `csv:"v6_leases_scavenging_grace_period,positive"`
	Extensions                  `csv:"-"`
}

func (*GridDhcp) Tag() string { return "griddhcp" }

func (r *GridDhcp) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionOnly, code, value)
}

// MemberDhcp holds the DHCP properties of a grid member
type MemberDhcp struct {
	ImportAction                 string     `csv:"import-action,enum=import_action"`
	Name                         string     `csv:"name,required"`
	BroadcastAddress             netip.Addr `csv:"broadcast_address,ipv4"`
	DomainNameServers            string     `csv:"domain_name_servers"`
	IgnoreClientRequestedOptions *bool      `csv:"ignore_client_requested_options"`
	PxeLeaseTime                 *int64     `csv:"pxe_lease_time,positive"`
	LeaseTime                    *int64     `csv:"lease_time,positive"`
	DomainName                   string     `csv:"domain_name"`
	Routers                      string     `csv:"routers"`
	OptionLogicFilters           string     `csv:"option_logic_filters"`
	EnablePxeLeaseTime           *bool      `csv:"enable_pxe_lease_time"`
	DenyBootp                    *bool      `csv:"deny_bootp"`
	Bootfile                     string     `csv:"bootfile"`
	Bootserver                   string     `csv:"bootserver"`
	Nextserver                   string     `csv:"nextserver"`
	EnableThresholds             *bool      `csv:"enable_thresholds"`
	RangeHighWaterMark           *int64     `csv:"range_high_water_mark,positive"`
	RangeHighWaterMarkReset      *int64     `csv:"range_high_water_mark_reset,positive"`
	RangeLowWaterMark            *int64     `csv:"range_low_water_mark,positive"`
	RangeLowWaterMarkReset       *int64     `csv:"range_low_water_mark_reset,positive"`
	EnableThresholdEmailWarnings *bool      `csv:"enable_threshold_email_warnings"`
	EnableThresholdSnmpWarnings  *bool      `csv:"enable_threshold_snmp_warnings"`
	ThresholdEmailAddresses      string     `csv:"threshold_email_addresses"`
	EnableDdns                   *bool      `csv:"enable_ddns"`
	DdnsUseOption81              *bool      `csv:"ddns_use_option81"`
	AlwaysUpdateDNS              *bool      `csv:"always_update_dns"`
	GenerateHostname             *bool      `csv:"generate_hostname"`
	UpdateStaticLeases           *bool      `csv:"update_static_leases"`
	DdnsTTL                      *int64     `csv:"ddns_ttl,positive"`
	UpdateDNSOnLeaseRenewal      *bool      `csv:"update_dns_on_lease_renewal"`
	PreferredLifetime            *int64     `csv:"preferred_lifetime,positive"`
	ValidLifetime                *int64     `csv:"valid_lifetime,positive"`
	IsAuthoritative              *bool      `csv:"is_authoritative"`
	RecycleLeases                *bool      `csv:"recycle_leases"`
	PingCount                    *int64     `csv:"ping_count,positive"`
	PingTimeout                  *int64     `csv:"ping_timeout,positive"`
	EnableLeasequery             *bool      `csv:"enable_leasequery"`
	RetryDdnsUpdates             *bool      `csv:"retry_ddns_updates"`
	DdnsRetryInterval            *int64     `csv:"ddns_retry_interval,positive"`
	LeaseScavengeTime            *int64     `csv:"lease_scavenge_time,positive"`
	EnableFingerprint            *bool      `csv:"enable_fingerprint"`
	IPv6EnableDdns               *bool      `csv:"ipv6_enable_ddns"`
	IPv6DdnsEnableOptionFqdn     *bool      `csv:"ipv6_ddns_enable_option_fqdn"`
	IPv6GenerateHostname         *bool      `csv:"ipv6_generate_hostname"`
	IPv6DdnsDomainname           string     `csv:"ipv6_ddns_domainname"`
	IPv6DdnsTTL                  *int64     `csv:"ipv6_ddns_ttl,positive"`
	IPv6DomainNameServers        string     `csv:"ipv6_domain_name_servers"`
	IPv6DomainName               string     `csv:"ipv6_domain_name"`
	IPv6RecycleLeases            *bool      `csv:"ipv6_recycle_leases"`
	IPv6ServerDUID               string     `csv:"ipv6_server_duid"`
	IPv6EnableRetryUpdates       *bool      `csv:"ipv6_enable_retry_updates"`
	IPv6RetryUpdatesInterval     *int64     `csv:"ipv6_retry_updates_interval,positive"`
	IPv6UpdateDNSOnLeaseRenewal  *bool      `csv:"ipv6_update_dns_on_lease_renewal"`
	DdnsDomainname               string     `csv:"ddns_domainname"`
	LeasesPerClientSettings      string     `csv:"leases_per_client_settings,enum=lease_per_client"`
	IgnoreClientIdentifier       *bool      `csv:"ignore_client_identifier"`
	V6LeasesScavengingEnabled    *bool      `csv:"v6_leases_scavenging_enabled"`
	V6LeasesScavengingGrace      *int64     `csv:"v6_leases_scavenging_grace_period,positive"`
	Extensions                   `csv:"-"`
}

func (*MemberDhcp) Tag() string { return "memberdhcp" }

func (r *MemberDhcp) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionAdmin, code, value)
}

// NetworkView is an isolated IP address space
type NetworkView struct {
	ImportAction string `csv:"import-action,enum=import_action"`
	Name         string `csv:"name,required"`
	NewName      string `csv:"_new_name"`
	Comment      string `csv:"comment"`
	Extensions   `csv:"-"`
}

func (*NetworkView) Tag() string { return "networkview" }

func (r *NetworkView) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaAdmin, code, value)
}

// NetworkContainer is an IPv4 container holding networks
type NetworkContainer struct {
	ImportAction                 string     `csv:"import-action,enum=import_action"`
	Address                      netip.Addr `csv:"address,required,ipv4"`
	Netmask                      netip.Addr `csv:"netmask,required,ipv4"`
	Comment                      string     `csv:"comment"`
	LeaseTime                    *int64     `csv:"lease_time"`
	Routers                      string     `csv:"routers"`
	DomainName                   string     `csv:"domain_name"`
	DomainNameServers            string     `csv:"domain_name_servers"`
	BroadcastAddress             netip.Addr `csv:"broadcast_address,ipv4"`
	EnableDdns                   *bool      `csv:"enable_ddns"`
	DdnsDomainname               string     `csv:"ddns_domainname"`
	DdnsTTL                      *int64     `csv:"ddns_ttl"`
	DdnsGenerateHostname         *bool      `csv:"ddns_generate_hostname"`
	UpdateStaticLeases           *bool      `csv:"update_static_leases"`
	EnableOption81               *bool      `csv:"enable_option81"`
	UpdateDNSOnLeaseRenewal      *bool      `csv:"update_dns_on_lease_renewal"`
	EnableDhcpThresholds         *bool      `csv:"enable_dhcp_thresholds"`
	EnableEmailWarnings          *bool      `csv:"enable_email_warnings"`
	EnableSnmpWarnings           *bool      `csv:"enable_snmp_warnings"`
	ThresholdEmailAddresses      []string   `csv:"threshold_email_addresses"`
	PxeLeaseTime                 *int64     `csv:"pxe_lease_time"`
	DenyBootp                    *bool      `csv:"deny_bootp"`
	BootFile                     string     `csv:"boot_file"`
	BootServer                   string     `csv:"boot_server"`
	NextServer                   string     `csv:"next_server"`
	OptionLogicFilters           string     `csv:"option_logic_filters"`
	LeaseScavengeTime            *int64     `csv:"lease_scavenge_time,positive"`
	IsAuthoritative              *bool      `csv:"is_authoritative"`
	RecycleLeases                *bool      `csv:"recycle_leases"`
	IgnoreClientRequestedOptions *bool      `csv:"ignore_client_requested_options"`
	NetworkView                  string     `csv:"network_view"`
	RirOrganization              string     `csv:"rir_organization"`
	RirRegistrationStatus        string     `csv:"rir_registration_status"`
	EnableDiscovery              *bool      `csv:"enable_discovery"`
	DiscoveryMember              string     `csv:"discovery_member"`
	DiscoveryExclusionRange      []string   `csv:"discovery_exclusion_range,ipv4"`
	RemoveSubnets                *bool      `csv:"remove_subnets"`
	Extensions                   `csv:"-"`
}

func (*NetworkContainer) Tag() string { return "networkcontainer" }

func (r *NetworkContainer) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// Network is an IPv4 network
type Network struct {
	ImportAction                 string     `csv:"import-action,enum=import_action"`
	Address                      netip.Addr `csv:"address,required,ipv4"`
	Netmask                      netip.Addr `csv:"netmask,required,ipv4"`
	RirOrganization              string     `csv:"rir_organization"`
	RirRegistrationStatus        string     `csv:"rir_registration_status"`
	NetworkView                  string     `csv:"network_view"`
	EnableDiscovery              *bool      `csv:"enable_discovery"`
	DiscoveryMember              string     `csv:"discovery_member"`
	DiscoveryExclusionRange      []string   `csv:"discovery_exclusion_range,ipv4"`
	Comment                      string     `csv:"comment"`
	AutoCreateReversezone        *bool      `csv:"auto_create_reversezone"`
	IsAuthoritative              *bool      `csv:"is_authoritative"`
	OptionLogicFilters           []string   `csv:"option_logic_filters"`
	BootFile                     string     `csv:"boot_file"`
	BootServer                   string     `csv:"boot_server"`
	DdnsDomainname               string     `csv:"ddns_domainname"`
	GenerateHostname             *bool      `csv:"generate_hostname"`
	AlwaysUpdateDNS              *bool      `csv:"always_update_dns"`
	UpdateStaticLeases           *bool      `csv:"update_static_leases"`
	UpdateDNSOnLeaseRenewal      *bool      `csv:"update_dns_on_lease_renewal"`
	DdnsTTL                      *int64     `csv:"ddns_ttl"`
	EnableOption81               *bool      `csv:"enable_option81"`
	DenyBootp                    *bool      `csv:"deny_bootp"`
	BroadcastAddress             netip.Addr `csv:"broadcast_address,ipv4"`
	Disabled                     *bool      `csv:"disabled"`
	EnableDdns                   *bool      `csv:"enable_ddns"`
	EnableThresholds             *bool      `csv:"enable_thresholds"`
	EnableThresholdEmailWarnings *bool      `csv:"enable_threshold_email_warnings"`
	EnableThresholdSnmpWarnings  *bool      `csv:"enable_threshold_snmp_warnings"`
	RangeHighWaterMark           *int64     `csv:"range_high_water_mark"`
	IgnoreClientRequestedOptions *bool      `csv:"ignore_client_requested_options"`
	RangeLowWaterMark            *int64     `csv:"range_low_water_mark"`
	NextServer                   string     `csv:"next_server"`
	LeaseTime                    *int64     `csv:"lease_time"`
	EnablePxeLeaseTime           *bool      `csv:"enable_pxe_lease_time"`
	PxeLeaseTime                 *int64     `csv:"pxe_lease_time"`
	RecycleLeases                *bool      `csv:"recycle_leases"`
	ThresholdEmailAddresses      []string   `csv:"threshold_email_addresses"`
	DhcpMembers                  string     `csv:"dhcp_members"`
	Routers                      string     `csv:"routers"`
	DomainName                   string     `csv:"domain_name"`
	DomainNameServers            string     `csv:"domain_name_servers"`
	ZoneAssociations             []string   `csv:"zone_associations"`
	Vlans                        string     `csv:"vlans"`
	Extensions                   `csv:"-"`
}

func (*Network) Tag() string { return "network" }

func (r *Network) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// IPv6NetworkContainer is an IPv6 container holding networks
type IPv6NetworkContainer struct {
	ImportAction            string     `csv:"import-action,enum=import_action"`
	Address                 netip.Addr `csv:"address,required,ipv6"`
	CIDR                    *int64     `csv:"cidr,positive,max=128,default=64"`
	NetworkView             string     `csv:"network_view"`
	Comment                 string     `csv:"comment"`
	ZoneAssociations        string     `csv:"zone_associations"`
	ValidLifetime           *int64     `csv:"valid_lifetime,positive"`
	PreferredLifetime       *int64     `csv:"preferred_lifetime,positive"`
	DomainName              string     `csv:"domain_name"`
	DomainNameServers       string     `csv:"domain_name_servers"`
	RecycleLeases           *bool      `csv:"recycle_leases"`
	EnableDdns              *bool      `csv:"enable_ddns"`
	DdnsDomainname          string     `csv:"ddns_domainname"`
	DdnsTTL                 *int64     `csv:"ddns_ttl,positive"`
	GenerateHostname        *bool      `csv:"generate_hostname"`
	AlwaysUpdateDNS         *bool      `csv:"always_update_dns"`
	UpdateDNSOnLeaseRenewal *bool      `csv:"update_dns_on_lease_renewal"`
	RirOrganization         string     `csv:"rir_organization"`
	RirRegistrationStatus   string     `csv:"rir_registration_status"`
	EnableDiscovery         *bool      `csv:"enable_discovery"`
	DiscoveryMember         string     `csv:"discovery_member"`
	DiscoveryExclusionRange []string   `csv:"discovery_exclusion_range,ipv4"`
	RemoveSubnets           *bool      `csv:"remove_subnets"`
	Extensions              `csv:"-"`
}

func (*IPv6NetworkContainer) Tag() string { return "ipv6networkcontainer" }

func (r *IPv6NetworkContainer) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// IPv6Network is an IPv6 network
type IPv6Network struct {
	ImportAction            string     `csv:"import-action,enum=import_action"`
	Address                 netip.Addr `csv:"address,required,ipv6"`
	CIDR                    *int64     `csv:"cidr,positive,max=128,default=64"`
	Comment                 string     `csv:"comment"`
	NetworkView             string     `csv:"network_view"`
	EnableDiscovery         *bool      `csv:"enable_discovery"`
	DiscoveryMember         string     `csv:"discovery_member"`
	DiscoveryExclusionRange []string   `csv:"discovery_exclusion_range,ipv4"`
	Disabled                *bool      `csv:"disabled"`
	AutoCreateReversezone   *bool      `csv:"auto_create_reversezone"`
	ZoneAssociations        string     `csv:"zone_associations"`
	DhcpMembers             string     `csv:"dhcp_members"`
	DomainName              string     `csv:"domain_name"`
	DomainNameServers       string     `csv:"domain_name_servers"`
	ValidLifetime           *int64     `csv:"valid_lifetime,positive"`
	PreferredLifetime       *int64     `csv:"preferred_lifetime,positive"`
	RecycleLeases           *bool      `csv:"recycle_leases"`
	EnableDdns              *bool      `csv:"enable_ddns"`
	AlwaysUpdateDNS         *bool      `csv:"always_update_dns"`
	DdnsDomainname          string     `csv:"ddns_domainname"`
	DdnsTTL                 *int64     `csv:"ddns_ttl,positive"`
	GenerateHostname        *bool      `csv:"generate_hostname"`
	UpdateDNSOnLeaseRenewal *bool      `csv:"update_dns_on_lease_renewal"`
	Vlans                   string     `csv:"vlans"`
	RirOrganization         string     `csv:"rir_organization"`
	RirRegistrationStatus   string     `csv:"rir_registration_status"`
	Extensions              `csv:"-"`
}

func (*IPv6Network) Tag() string { return "ipv6network" }

func (r *IPv6Network) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAInherit, code, value)
}

// SharedNetwork groups IPv4 networks on one physical segment
type SharedNetwork struct {
	ImportAction                 string `csv:"import-action,enum=import_action"`
	Name                         string `csv:"name,required"`
	NewName                      string `csv:"_new_name"`
	Networks                     string `csv:"networks,required"`
	NetworkView                  string `csv:"network_view"`
	IsAuthoritative              *bool  `csv:"is_authoritative"`
	OptionLogicFilters           string `csv:"option_logic_filters"`
	BootFile                     string `csv:"boot_file"`
	BootServer                   string `csv:"boot_server"`
	Comment                      string `csv:"comment"`
	GenerateHostname             *bool  `csv:"generate_hostname"`
	AlwaysUpdateDNS              *bool  `csv:"always_update_dns"`
	UpdateStaticLeases           *bool  `csv:"update_static_leases"`
	UpdateDNSOnLeaseRenewal      *bool  `csv:"update_dns_on_lease_renewal"`
	DdnsTTL                      *int64 `csv:"ddns_ttl,positive"`
	EnableOption81               *bool  `csv:"enable_option81"`
	DenyBootp                    *bool  `csv:"deny_bootp"`
	Disabled                     *bool  `csv:"disabled"`
	EnableDdns                   *bool  `csv:"enable_ddns"`
	IgnoreClientRequestedOptions *bool  `csv:"ignore_client_requested_options"`
	NextServer                   string `csv:"next_server"`
	LeaseTime                    *int64 `csv:"lease_time,positive"`
	EnablePxeLeaseTime           *bool  `csv:"enable_pxe_lease_time"`
	PxeLeaseTime                 *int64 `csv:"pxe_lease_time,positive"`
	Routers                      string `csv:"routers"`
	DomainName                   string `csv:"domain_name"`
	DomainNameServers            string `csv:"domain_name_servers"`
	Extensions                   `csv:"-"`
}

func (*SharedNetwork) Tag() string { return "sharednetwork" }

func (r *SharedNetwork) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// IPv6SharedNetwork groups IPv6 networks on one physical segment
type IPv6SharedNetwork struct {
	ImportAction            string `csv:"import-action,enum=import_action"`
	Name                    string `csv:"name,required"`
	NewName                 string `csv:"_new_name"`
	Networks                string `csv:"networks,required"`
	NetworkView             string `csv:"network_view"`
	Comment                 string `csv:"comment"`
	Disabled                *bool  `csv:"disabled"`
	DomainName              string `csv:"domain_name"`
	DomainNameServers       string `csv:"domain_name_servers"`
	ValidLifetime           *int64 `csv:"valid_lifetime,positive"`
	PreferredLifetime       *int64 `csv:"preferred_lifetime,positive"`
	EnableDdns              *bool  `csv:"enable_ddns"`
	AlwaysUpdateDNS         *bool  `csv:"always_update_dns"`
	DdnsDomainName          string `csv:"ddns_domain_name"`
	DdnsTTL                 *int64 `csv:"ddns_ttl,positive"`
	GenerateHostname        *bool  `csv:"generate_hostname"`
	UpdateDNSOnLeaseRenewal *bool  `csv:"update_dns_on_lease_renewal"`
	Extensions              `csv:"-"`
}

func (*IPv6SharedNetwork) Tag() string { return "ipv6sharednetwork" }

func (r *IPv6SharedNetwork) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// DhcpRange is an IPv4 DHCP address range
type DhcpRange struct {
	ImportAction                 string     `csv:"import-action,enum=import_action"`
	StartAddress                 netip.Addr `csv:"start_address,required,ipv4"`
	NewStartAddress              netip.Addr `csv:"_new_start_address,ipv4"`
	EndAddress                   netip.Addr `csv:"end_address,required,ipv4"`
	NewEndAddress                netip.Addr `csv:"_new_end_address,ipv4"`
	NetworkView                  string     `csv:"network_view"`
	Name                         string     `csv:"name"`
	Comment                      string     `csv:"comment"`
	IsAuthoritative              *bool      `csv:"is_authoritative"`
	BootFile                     string     `csv:"boot_file"`
	BootServer                   string     `csv:"boot_server"`
	DdnsDomainname               string     `csv:"ddns_domainname"`
	GenerateHostname             *bool      `csv:"generate_hostname"`
	DenyAllClients               *bool      `csv:"deny_all_clients"`
	DenyBootp                    *bool      `csv:"deny_bootp"`
	Disabled                     *bool      `csv:"disabled"`
	DomainNameServers            string     `csv:"domain_name_servers"`
	EnableDdns                   *bool      `csv:"enable_ddns"`
	EnableThresholds             *bool      `csv:"enable_thresholds"`
	EnableThresholdEmailWarnings *bool      `csv:"enable_threshold_email_warnings"`
	EnableThresholdSnmpWarnings  *bool      `csv:"enable_threshold_snmp_warnings"`
	ThresholdEmailAddresses      string     `csv:"threshold_email_addresses"`
	RangeHighWaterMark           *int64     `csv:"range_high_water_mark"`
	IgnoreClientRequestedOptions *bool      `csv:"ignore_client_requested_options"`
	RangeLowWaterMark            *int64     `csv:"range_low_water_mark"`
	NextServer                   string     `csv:"next_server"`
	LeaseTime                    *int64     `csv:"lease_time"`
	EnablePxeLeaseTime           *bool      `csv:"enable_pxe_lease_time"`
	PxeLeaseTime                 *int64     `csv:"pxe_lease_time"`
	UnknownClientsOption         string     `csv:"unknown_clients_option"`
	KnownClientsOption           string     `csv:"known_clients_option"`
	RecycleLeases                *bool      `csv:"recycle_leases"`
	UpdateDNSOnLeaseRenewal      *bool      `csv:"update_dns_on_lease_renewal"`
	AlwaysUpdateDNS              *bool      `csv:"always_update_dns"`
	ExclusionRanges              string     `csv:"exclusion_ranges"`
	Member                       string     `csv:"member"`
	ServerAssociationType        string     `csv:"server_association_type,enum=server_association"`
	FailoverAssociation          string     `csv:"failover_association"`
	BroadcastAddress             netip.Addr `csv:"broadcast_address,ipv4"`
	Routers                      string     `csv:"routers"`
	DomainName                   string     `csv:"domain_name"`
	OptionLogicFilters           []string   `csv:"option_logic_filters"`
	Extensions                   `csv:"-"`
}

func (*DhcpRange) Tag() string { return "dhcprange" }

func (r *DhcpRange) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// IPv6DhcpRange is an IPv6 DHCP address or prefix range
type IPv6DhcpRange struct {
	ImportAction          string     `csv:"import-action,enum=import_action"`
	AddressType           string     `csv:"address_type,enum=ipv6_address_type"`
	Parent                string     `csv:"parent"`
	StartAddress          netip.Addr `csv:"start_address,required,ipv6"`
	NewStartAddress       netip.Addr `csv:"_new_start_address,ipv6"`
	EndAddress            netip.Addr `csv:"end_address,required,ipv6"`
	NewEndAddress         netip.Addr `csv:"_new_end_address,ipv6"`
	IPv6StartPrefix       *int64     `csv:"ipv6_start_prefix,positive,max=128"`
	NewIPv6StartPrefix    *int64     `csv:"_new_ipv6_start_prefix,positive,max=128"`
	IPv6EndPrefix         *int64     `csv:"ipv6_end_prefix,positive,max=128"`
	NewIPv6EndPrefix      *int64     `csv:"_new_ipv6_end_prefix,positive,max=128"`
	IPv6PrefixBits        *int64     `csv:"ipv6_prefix_bits,positive,max=128"`
	NewIPv6PrefixBits     *int64     `csv:"_new_ipv6_prefix_bits,positive,max=128"`
	NetworkView           string     `csv:"network_view"`
	Name                  string     `csv:"name"`
	Comment               string     `csv:"comment"`
	Disabled              *bool      `csv:"disabled"`
	Member                string     `csv:"member"`
	ServerAssociationType string     `csv:"server_association_type,enum=server_association"`
	ExclusionRanges       string     `csv:"exclusion_ranges"`
	RecycleLeases         *bool      `csv:"recycle_leases"`
	Extensions            `csv:"-"`
}

func (*IPv6DhcpRange) Tag() string { return "ipv6dhcprange" }

func (r *IPv6DhcpRange) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAInherit, code, value)
}

// FixedAddress is an IPv4 DHCP reservation
type FixedAddress struct {
	ImportAction                 string     `csv:"import-action,enum=import_action"`
	IPAddress                    netip.Addr `csv:"ip_address,required,ipv4"`
	MSServer                     netip.Addr `csv:"ms_server,ipv4"`
	NewIPAddress                 netip.Addr `csv:"_new_ip_address,ipv4"`
	NetworkView                  string     `csv:"network_view"`
	Name                         string     `csv:"name"`
	AlwaysUpdateDNS              *bool      `csv:"always_update_dns"`
	OptionLogicFilters           string     `csv:"option_logic_filters"`
	BootFile                     string     `csv:"boot_file"`
	BootServer                   string     `csv:"boot_server"`
	PreparedZero                 *bool      `csv:"prepared_zero"`
	Comment                      string     `csv:"comment"`
	DdnsDomainname               string     `csv:"ddns_domainname"`
	DenyBootp                    *bool      `csv:"deny_bootp"`
	BroadcastAddress             netip.Addr `csv:"broadcast_address,ipv4"`
	Routers                      string     `csv:"routers"`
	DomainName                   string     `csv:"domain_name"`
	DomainNameServers            string     `csv:"domain_name_servers"`
	DhcpClientIdentifier         string     `csv:"dhcp_client_identifier"`
	Disabled                     *bool      `csv:"disabled"`
	EnableDdns                   *bool      `csv:"enable_ddns"`
	IgnoreClientRequestedOptions *bool      `csv:"ignore_client_requested_options"`
	CircuitID                    string     `csv:"circuit_id"`
	RemoteID                     string     `csv:"remote_id"`
	MACAddress                   string     `csv:"mac_address"`
	MatchOption                  string     `csv:"match_option,enum=match_option"`
	NextServer                   string     `csv:"next_server"`
	LeaseTime                    *int64     `csv:"lease_time"`
	EnablePxeLeaseTime           *bool      `csv:"enable_pxe_lease_time"`
	DdnsHostname                 string     `csv:"ddns_hostname"`
	PxeLeaseTime                 *int64     `csv:"pxe_lease_time"`
	Extensions                   `csv:"-"`
}

func (*FixedAddress) Tag() string { return "fixedaddress" }

func (r *FixedAddress) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAAdmin, code, value)
}

// IPv6FixedAddress is an IPv6 DHCP reservation matched by DUID
type IPv6FixedAddress struct {
	ImportAction      string     `csv:"import-action,enum=import_action"`
	AddressType       string     `csv:"address_type,enum=ipv6_address_type"`
	Parent            string     `csv:"parent"`
	IPAddress         netip.Addr `csv:"ip_address,required,ipv6"`
	NewIPAddress      netip.Addr `csv:"_new_ip_address,ipv6"`
	IPv6Prefix        *int64     `csv:"ipv6_prefix,positive,max=128"`
	NewIPv6Prefix     *int64     `csv:"_new_ipv6_prefix,positive,max=128"`
	IPv6PrefixBits    *int64     `csv:"ipv6_prefix_bits,positive,max=128"`
	NewIPv6PrefixBits *int64     `csv:"_new_ipv6_prefix_bits,positive,max=128"`
	NetworkView       string     `csv:"network_view"`
	Name              string     `csv:"name"`
	Comment           string     `csv:"comment"`
	Disabled          *bool      `csv:"disabled"`
	MatchOption       string     `csv:"match_option,default=DUID"`
	DUID              string     `csv:"duid,required"`
	DomainName        string     `csv:"domain_name"`
	DomainNameServers string     `csv:"domain_name_servers"`
	ValidLifetime     *int64     `csv:"valid_lifetime,positive"`
	PreferredLifetime *int64     `csv:"preferred_lifetime,positive"`
	Extensions        `csv:"-"`
}

func (*IPv6FixedAddress) Tag() string { return "ipv6fixedaddress" }

func (r *IPv6FixedAddress) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEAInherit, code, value)
}

// DhcpFingerprint identifies a device class by its DHCP options
type DhcpFingerprint struct {
	ImportAction   string `csv:"import-action,enum=import_action"`
	Name           string `csv:"name,required"`
	NewName        string `csv:"_new_name"`
	Type           string `csv:"type,enum=fingerprint_type,default=CUSTOM"`
	Comment        string `csv:"comment"`
	Disable        *bool  `csv:"disable"`
	VendorID       string `csv:"vendor_id"`
	OptionSequence string `csv:"option_sequence"`
	DeviceClass    string `csv:"device_class"`
	Protocol       string `csv:"protocol,required,enum=protocol"`
	Extensions     `csv:"-"`
}

func (*DhcpFingerprint) Tag() string { return "dhcpfingerprint" }

func (r *DhcpFingerprint) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaOnly, code, value)
}

// DhcpMacFilter is a named MAC address filter
type DhcpMacFilter struct {
	ImportAction          string `csv:"import-action,enum=import_action"`
	Name                  string `csv:"name,required"`
	NewName               string `csv:"_new_name"`
	NeverExpires          *bool  `csv:"never_expires"`
	ExpirationInterval    *int64 `csv:"expiration_interval,positive"`
	EnforceExpirationTime *bool  `csv:"enforce_expiration_time"`
	Comment               string `csv:"comment"`
	Extensions            `csv:"-"`
}

func (*DhcpMacFilter) Tag() string { return "dhcpmacfilter" }

func (r *DhcpMacFilter) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaAdmin, code, value)
}

// MacFilterAddress is a MAC address entry of a MAC filter
type MacFilterAddress struct {
	ImportAction      string     `csv:"import-action,enum=import_action"`
	Parent            string     `csv:"parent,required"`
	MACAddress        string     `csv:"mac_address,required"`
	NewMACAddress     string     `csv:"_new_mac_address"`
	IsRegisteredUser  *bool      `csv:"is_registered_user"`
	RegisteredUser    string     `csv:"registered_user"`
	GuestFirstName    string     `csv:"guest_first_name"`
	GuestMiddleName   string     `csv:"guest_middle_name"`
	GuestLastName     string     `csv:"guest_last_name"`
	GuestEmail        string     `csv:"guest_email"`
	GuestPhone        string     `csv:"guest_phone"`
	GuestCustomField1 string     `csv:"guest_custom_field1"`
	GuestCustomField2 string     `csv:"guest_custom_field2"`
	GuestCustomField3 string     `csv:"guest_custom_field3"`
	GuestCustomField4 string     `csv:"guest_custom_field4"`
	NeverExpires      *bool      `csv:"never_expires"`
	ExpireTime        *time.Time `csv:"expire_time"`
	Comment           string     `csv:"comment"`
	Extensions        `csv:"-"`
}

func (*MacFilterAddress) Tag() string { return "macfilteraddress" }

func (r *MacFilterAddress) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaAdmin, code, value)
}

// OptionFilter matches clients by DHCP option values
type OptionFilter struct {
	ImportAction string `csv:"import-action,enum=import_action"`
	Name         string `csv:"name,required"`
	NewName      string `csv:"_new_name"`
	Comment      string `csv:"comment"`
	Expression   string `csv:"expression"`
	BootFile     string `csv:"boot_file"`
	BootServer   string `csv:"boot_server"`
	LeaseTime    *int64 `csv:"lease_time"`
	PxeLeaseTime *int64 `csv:"pxe_lease_time"`
	NextServer   string `csv:"next_server"`
	OptionSpace  string `csv:"option_space"`
	Extensions   `csv:"-"`
}

func (*OptionFilter) Tag() string { return "optionfilter" }

func (r *OptionFilter) AddProperty(code, value string) error {
	return r.add(r.Tag(), optionEA, code, value)
}

// OptionFilterMatchRule is a match rule of an option filter
type OptionFilterMatchRule struct {
	ImportAction    string `csv:"import-action,enum=import_action"`
	Parent          string `csv:"parent,required"`
	MatchOption     string `csv:"match_option"`
	MatchValue      string `csv:"match_value"`
	NewMatchValue   string `csv:"_new_match_value"`
	Comment         string `csv:"comment"`
	IsSubstring     *bool  `csv:"is_substring"`
	SubstringOffset *int64 `csv:"substring_offset"`
	SubstringLength *int64 `csv:"substring_length"`
}

func (*OptionFilterMatchRule) Tag() string { return "optionfiltermatchrule" }

// RelayAgentFilter matches clients by relay agent circuit or remote ID
type RelayAgentFilter struct {
	ImportAction  string `csv:"import-action,enum=import_action"`
	Name          string `csv:"name,required"`
	NewName       string `csv:"_new_name"`
	Comment       string `csv:"comment"`
	CircuitIDRule string `csv:"circuit_id_rule"`
	CircuitID     string `csv:"circuit_id"`
	RemoteIDRule  string `csv:"remote_id_rule"`
	RemoteID      string `csv:"remote_id"`
	Extensions    `csv:"-"`
}

func (*RelayAgentFilter) Tag() string { return "relayagentfilter" }

func (r *RelayAgentFilter) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaAdmin, code, value)
}

// DhcpFingerprintFilter matches clients by fingerprint
type DhcpFingerprintFilter struct {
	ImportAction   string `csv:"import-action,enum=import_action"`
	Name           string `csv:"name,required"`
	NewName        string `csv:"_new_name"`
	Fingerprint    string `csv:"fingerprint"`
	NewFingerprint string `csv:"_new_fingerprint"`
	Comment        string `csv:"comment"`
	Extensions     `csv:"-"`
}

func (*DhcpFingerprintFilter) Tag() string { return "dhcpfingerprintfilter" }

func (r *DhcpFingerprintFilter) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaOnly, code, value)
}

// OptionSpace is a custom IPv4 DHCP option space
type OptionSpace struct {
	ImportAction string `csv:"import-action,enum=import_action"`
	Name         string `csv:"name,required,word"`
	NewName      string `csv:"_new_name,word"`
	Comment      string `csv:"comment"`
}

func (*OptionSpace) Tag() string { return "optionspace" }

// IPv6OptionSpace is a custom IPv6 DHCP option space
type IPv6OptionSpace struct {
	ImportAction         string `csv:"import-action,enum=import_action"`
	Name                 string `csv:"name,required"`
	NewName              string `csv:"_new_name"`
	Comment              string `csv:"comment"`
	IPv6EnterpriseNumber string `csv:"ipv6_enterprise_number"`
}

func (*IPv6OptionSpace) Tag() string { return "ipv6optionspace" }

// OptionDefinition defines an IPv4 DHCP option within a space
type OptionDefinition struct {
	ImportAction string `csv:"import-action,enum=import_action"`
	Space        string `csv:"space,required"`
	NewSpace     string `csv:"_new_space"`
	Name         string `csv:"name,required"`
	NewName      string `csv:"_new_name"`
	Code         string `csv:"code,required"`
	Type         string `csv:"type,required,enum=option_type"`
}

func (*OptionDefinition) Tag() string { return "optiondefinition" }

// IPv6OptionDefinition defines an IPv6 DHCP option within a space
type IPv6OptionDefinition struct {
	ImportAction string `csv:"import-action,enum=import_action"`
	Space        string `csv:"space,required"`
	NewSpace     string `csv:"_new_space"`
	Name         string `csv:"name,required"`
	NewName      string `csv:"_new_name"`
	Code         string `csv:"code,required"`
	Type         string `csv:"type,required,enum=option_type"`
}

func (*IPv6OptionDefinition) Tag() string { return "ipv6optiondefinition" }

// DhcpFailoverAssociation pairs two DHCP servers for failover
type DhcpFailoverAssociation struct {
	ImportAction        string `csv:"import-action,enum=import_action"`
	Name                string `csv:"name,required"`
	NewName             string `csv:"_new_name"`
	Comment             string `csv:"comment"`
	PrimaryServerType   string `csv:"primary_server_type,required,enum=failover_server"`
	GridPrimary         string `csv:"grid_primary"`
	ExternalPrimary     string `csv:"external_primary"`
	SecondaryServerType string `csv:"secondary_server_type,required,enum=failover_server"`
	GridSecondary       string `csv:"grid_secondary"`
	ExternalSecondary   string `csv:"external_secondary"`
	FailoverPort        *int64 `csv:"failover_port,positive,max=63998,default=647"`
	MaxResponseDelay    *int64 `csv:"max_response_delay,min=1,default=60"`
	MCLT                *int64 `csv:"mclt,min=0,max=4294967295,default=3600"`
	MaxLoadBalanceDelay *int64 `csv:"max_load_balance_delay,min=0,max=4294967295,default=3"`
	LoadBalanceSplit    *int64 `csv:"load_balance_split,min=0,max=255,default=128"`
	RecycleLeases       *bool  `csv:"recycle_leases"`
	Extensions          `csv:"-"`
}

func (*DhcpFailoverAssociation) Tag() string { return "dhcpfailoverassociation" }

func (r *DhcpFailoverAssociation) AddProperty(code, value string) error {
	return r.add(r.Tag(), eaOnly, code, value)
}
