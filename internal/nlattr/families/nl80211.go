package families

import (
	"golang.org/x/sys/unix"

	"nldump/internal/nlattr"
)

// nl80211 is the generic netlink family name the kernel registers for
// cfg80211.
const nl80211 = unix.NL80211_GENL_NAME

// patternSupport mirrors struct nl80211_pattern_support.
type patternSupport struct {
	MaxPatterns   uint32
	MinPatternLen uint32
	MaxPatternLen uint32
	MaxPktOffset  uint32
}

var decodePatternSupport = nlattr.StructDecoder(func(p *patternSupport) []any {
	return []any{p.MaxPatterns, p.MinPatternLen, p.MaxPatternLen, p.MaxPktOffset}
})

// Cipher suite selectors are OUI<<8|type, easier to read in hex.
var decodeCipherSuites = nlattr.ArrayDecoder[uint32]("0x%08x")

var iftypes = nlattr.Map{
	unix.NL80211_IFTYPE_UNSPECIFIED: {Name: "UNSPECIFIED", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_ADHOC:       {Name: "ADHOC", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_STATION:     {Name: "STATION", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_AP:          {Name: "AP", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_AP_VLAN:     {Name: "AP_VLAN", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_WDS:         {Name: "WDS", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_MONITOR:     {Name: "MONITOR", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_MESH_POINT:  {Name: "MESH_POINT", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_P2P_CLIENT:  {Name: "P2P_CLIENT", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_P2P_GO:      {Name: "P2P_GO", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_P2P_DEVICE:  {Name: "P2P_DEVICE", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_OCB:         {Name: "OCB", Type: nlattr.Flag},
	unix.NL80211_IFTYPE_NAN:         {Name: "NAN", Type: nlattr.Flag},
}

var nl80211Commands = map[uint8]string{
	unix.NL80211_CMD_UNSPEC: "UNSPEC",
	unix.NL80211_CMD_GET_WIPHY: "GET_WIPHY",
	unix.NL80211_CMD_SET_WIPHY: "SET_WIPHY",
	unix.NL80211_CMD_NEW_WIPHY: "NEW_WIPHY",
	unix.NL80211_CMD_DEL_WIPHY: "DEL_WIPHY",
	unix.NL80211_CMD_GET_INTERFACE: "GET_INTERFACE",
	unix.NL80211_CMD_SET_INTERFACE: "SET_INTERFACE",
	unix.NL80211_CMD_NEW_INTERFACE: "NEW_INTERFACE",
	unix.NL80211_CMD_DEL_INTERFACE: "DEL_INTERFACE",
	unix.NL80211_CMD_GET_KEY: "GET_KEY",
	unix.NL80211_CMD_SET_KEY: "SET_KEY",
	unix.NL80211_CMD_NEW_KEY: "NEW_KEY",
	unix.NL80211_CMD_DEL_KEY: "DEL_KEY",
	unix.NL80211_CMD_GET_BEACON: "GET_BEACON",
	unix.NL80211_CMD_SET_BEACON: "SET_BEACON",
	unix.NL80211_CMD_START_AP: "START_AP",
	unix.NL80211_CMD_STOP_AP: "STOP_AP",
	unix.NL80211_CMD_GET_STATION: "GET_STATION",
	unix.NL80211_CMD_SET_STATION: "SET_STATION",
	unix.NL80211_CMD_NEW_STATION: "NEW_STATION",
	unix.NL80211_CMD_DEL_STATION: "DEL_STATION",
	unix.NL80211_CMD_GET_MPATH: "GET_MPATH",
	unix.NL80211_CMD_SET_MPATH: "SET_MPATH",
	unix.NL80211_CMD_NEW_MPATH: "NEW_MPATH",
	unix.NL80211_CMD_DEL_MPATH: "DEL_MPATH",
	unix.NL80211_CMD_SET_BSS: "SET_BSS",
	unix.NL80211_CMD_SET_REG: "SET_REG",
	unix.NL80211_CMD_REQ_SET_REG: "REQ_SET_REG",
	unix.NL80211_CMD_GET_MESH_CONFIG: "GET_MESH_CONFIG",
	unix.NL80211_CMD_SET_MESH_CONFIG: "SET_MESH_CONFIG",
	unix.NL80211_CMD_SET_MGMT_EXTRA_IE: "SET_MGMT_EXTRA_IE",
	unix.NL80211_CMD_GET_REG: "GET_REG",
	unix.NL80211_CMD_GET_SCAN: "GET_SCAN",
	unix.NL80211_CMD_TRIGGER_SCAN: "TRIGGER_SCAN",
	unix.NL80211_CMD_NEW_SCAN_RESULTS: "NEW_SCAN_RESULTS",
	unix.NL80211_CMD_SCAN_ABORTED: "SCAN_ABORTED",
	unix.NL80211_CMD_REG_CHANGE: "REG_CHANGE",
	unix.NL80211_CMD_AUTHENTICATE: "AUTHENTICATE",
	unix.NL80211_CMD_ASSOCIATE: "ASSOCIATE",
	unix.NL80211_CMD_DEAUTHENTICATE: "DEAUTHENTICATE",
	unix.NL80211_CMD_DISASSOCIATE: "DISASSOCIATE",
	unix.NL80211_CMD_MICHAEL_MIC_FAILURE: "MICHAEL_MIC_FAILURE",
	unix.NL80211_CMD_REG_BEACON_HINT: "REG_BEACON_HINT",
	unix.NL80211_CMD_JOIN_IBSS: "JOIN_IBSS",
	unix.NL80211_CMD_LEAVE_IBSS: "LEAVE_IBSS",
	unix.NL80211_CMD_TESTMODE: "TESTMODE",
	unix.NL80211_CMD_CONNECT: "CONNECT",
	unix.NL80211_CMD_ROAM: "ROAM",
	unix.NL80211_CMD_DISCONNECT: "DISCONNECT",
	unix.NL80211_CMD_SET_WIPHY_NETNS: "SET_WIPHY_NETNS",
	unix.NL80211_CMD_GET_SURVEY: "GET_SURVEY",
	unix.NL80211_CMD_NEW_SURVEY_RESULTS: "NEW_SURVEY_RESULTS",
	unix.NL80211_CMD_SET_PMKSA: "SET_PMKSA",
	unix.NL80211_CMD_DEL_PMKSA: "DEL_PMKSA",
	unix.NL80211_CMD_FLUSH_PMKSA: "FLUSH_PMKSA",
	unix.NL80211_CMD_REMAIN_ON_CHANNEL: "REMAIN_ON_CHANNEL",
	unix.NL80211_CMD_CANCEL_REMAIN_ON_CHANNEL: "CANCEL_REMAIN_ON_CHANNEL",
	unix.NL80211_CMD_SET_TX_BITRATE_MASK: "SET_TX_BITRATE_MASK",
	unix.NL80211_CMD_REGISTER_FRAME: "REGISTER_FRAME",
	unix.NL80211_CMD_FRAME: "FRAME",
	unix.NL80211_CMD_FRAME_TX_STATUS: "FRAME_TX_STATUS",
	unix.NL80211_CMD_SET_POWER_SAVE: "SET_POWER_SAVE",
	unix.NL80211_CMD_GET_POWER_SAVE: "GET_POWER_SAVE",
	unix.NL80211_CMD_SET_CQM: "SET_CQM",
	unix.NL80211_CMD_NOTIFY_CQM: "NOTIFY_CQM",
	unix.NL80211_CMD_SET_CHANNEL: "SET_CHANNEL",
	unix.NL80211_CMD_SET_WDS_PEER: "SET_WDS_PEER",
	unix.NL80211_CMD_FRAME_WAIT_CANCEL: "FRAME_WAIT_CANCEL",
	unix.NL80211_CMD_JOIN_MESH: "JOIN_MESH",
	unix.NL80211_CMD_LEAVE_MESH: "LEAVE_MESH",
	unix.NL80211_CMD_UNPROT_DEAUTHENTICATE: "UNPROT_DEAUTHENTICATE",
	unix.NL80211_CMD_UNPROT_DISASSOCIATE: "UNPROT_DISASSOCIATE",
	unix.NL80211_CMD_NEW_PEER_CANDIDATE: "NEW_PEER_CANDIDATE",
	unix.NL80211_CMD_GET_WOWLAN: "GET_WOWLAN",
	unix.NL80211_CMD_SET_WOWLAN: "SET_WOWLAN",
	unix.NL80211_CMD_START_SCHED_SCAN: "START_SCHED_SCAN",
	unix.NL80211_CMD_STOP_SCHED_SCAN: "STOP_SCHED_SCAN",
	unix.NL80211_CMD_SCHED_SCAN_RESULTS: "SCHED_SCAN_RESULTS",
	unix.NL80211_CMD_SCHED_SCAN_STOPPED: "SCHED_SCAN_STOPPED",
	unix.NL80211_CMD_SET_REKEY_OFFLOAD: "SET_REKEY_OFFLOAD",
	unix.NL80211_CMD_PMKSA_CANDIDATE: "PMKSA_CANDIDATE",
	unix.NL80211_CMD_TDLS_OPER: "TDLS_OPER",
	unix.NL80211_CMD_TDLS_MGMT: "TDLS_MGMT",
	unix.NL80211_CMD_UNEXPECTED_FRAME: "UNEXPECTED_FRAME",
	unix.NL80211_CMD_PROBE_CLIENT: "PROBE_CLIENT",
	unix.NL80211_CMD_REGISTER_BEACONS: "REGISTER_BEACONS",
	unix.NL80211_CMD_UNEXPECTED_4ADDR_FRAME: "UNEXPECTED_4ADDR_FRAME",
	unix.NL80211_CMD_SET_NOACK_MAP: "SET_NOACK_MAP",
	unix.NL80211_CMD_CH_SWITCH_NOTIFY: "CH_SWITCH_NOTIFY",
	unix.NL80211_CMD_START_P2P_DEVICE: "START_P2P_DEVICE",
	unix.NL80211_CMD_STOP_P2P_DEVICE: "STOP_P2P_DEVICE",
	unix.NL80211_CMD_CONN_FAILED: "CONN_FAILED",
	unix.NL80211_CMD_SET_MCAST_RATE: "SET_MCAST_RATE",
	unix.NL80211_CMD_SET_MAC_ACL: "SET_MAC_ACL",
	unix.NL80211_CMD_RADAR_DETECT: "RADAR_DETECT",
	unix.NL80211_CMD_GET_PROTOCOL_FEATURES: "GET_PROTOCOL_FEATURES",
	unix.NL80211_CMD_UPDATE_FT_IES: "UPDATE_FT_IES",
	unix.NL80211_CMD_FT_EVENT: "FT_EVENT",
	unix.NL80211_CMD_CRIT_PROTOCOL_START: "CRIT_PROTOCOL_START",
	unix.NL80211_CMD_CRIT_PROTOCOL_STOP: "CRIT_PROTOCOL_STOP",
	unix.NL80211_CMD_GET_COALESCE: "GET_COALESCE",
	unix.NL80211_CMD_SET_COALESCE: "SET_COALESCE",
	unix.NL80211_CMD_CHANNEL_SWITCH: "CHANNEL_SWITCH",
	unix.NL80211_CMD_VENDOR: "VENDOR",
	unix.NL80211_CMD_SET_QOS_MAP: "SET_QOS_MAP",
	unix.NL80211_CMD_ADD_TX_TS: "ADD_TX_TS",
	unix.NL80211_CMD_DEL_TX_TS: "DEL_TX_TS",
	unix.NL80211_CMD_GET_MPP: "GET_MPP",
	unix.NL80211_CMD_JOIN_OCB: "JOIN_OCB",
	unix.NL80211_CMD_LEAVE_OCB: "LEAVE_OCB",
	unix.NL80211_CMD_CH_SWITCH_STARTED_NOTIFY: "CH_SWITCH_STARTED_NOTIFY",
	unix.NL80211_CMD_TDLS_CHANNEL_SWITCH: "TDLS_CHANNEL_SWITCH",
	unix.NL80211_CMD_TDLS_CANCEL_CHANNEL_SWITCH: "TDLS_CANCEL_CHANNEL_SWITCH",
	unix.NL80211_CMD_WIPHY_REG_CHANGE: "WIPHY_REG_CHANGE",
	unix.NL80211_CMD_ABORT_SCAN: "ABORT_SCAN",
	unix.NL80211_CMD_START_NAN: "START_NAN",
	unix.NL80211_CMD_STOP_NAN: "STOP_NAN",
	unix.NL80211_CMD_ADD_NAN_FUNCTION: "ADD_NAN_FUNCTION",
	unix.NL80211_CMD_DEL_NAN_FUNCTION: "DEL_NAN_FUNCTION",
	unix.NL80211_CMD_CHANGE_NAN_CONFIG: "CHANGE_NAN_CONFIG",
	unix.NL80211_CMD_NAN_MATCH: "NAN_MATCH",
	unix.NL80211_CMD_SET_MULTICAST_TO_UNICAST: "SET_MULTICAST_TO_UNICAST",
	unix.NL80211_CMD_UPDATE_CONNECT_PARAMS: "UPDATE_CONNECT_PARAMS",
	unix.NL80211_CMD_SET_PMK: "SET_PMK",
	unix.NL80211_CMD_DEL_PMK: "DEL_PMK",
	unix.NL80211_CMD_PORT_AUTHORIZED: "PORT_AUTHORIZED",
	unix.NL80211_CMD_RELOAD_REGDB: "RELOAD_REGDB",
	unix.NL80211_CMD_EXTERNAL_AUTH: "EXTERNAL_AUTH",
	unix.NL80211_CMD_STA_OPMODE_CHANGED: "STA_OPMODE_CHANGED",
	unix.NL80211_CMD_CONTROL_PORT_FRAME: "CONTROL_PORT_FRAME",
	unix.NL80211_CMD_GET_FTM_RESPONDER_STATS: "GET_FTM_RESPONDER_STATS",
	unix.NL80211_CMD_PEER_MEASUREMENT_START: "PEER_MEASUREMENT_START",
	unix.NL80211_CMD_PEER_MEASUREMENT_RESULT: "PEER_MEASUREMENT_RESULT",
	unix.NL80211_CMD_PEER_MEASUREMENT_COMPLETE: "PEER_MEASUREMENT_COMPLETE",
	unix.NL80211_CMD_NOTIFY_RADAR: "NOTIFY_RADAR",
	unix.NL80211_CMD_UPDATE_OWE_INFO: "UPDATE_OWE_INFO",
	unix.NL80211_CMD_PROBE_MESH_LINK: "PROBE_MESH_LINK",
	unix.NL80211_CMD_SET_TID_CONFIG: "SET_TID_CONFIG",
	unix.NL80211_CMD_UNPROT_BEACON: "UNPROT_BEACON",
	unix.NL80211_CMD_CONTROL_PORT_FRAME_TX_STATUS: "CONTROL_PORT_FRAME_TX_STATUS",
}

var nl80211Attrs = nlattr.Map{
	unix.NL80211_ATTR_UNSPEC: {Name: "UNSPEC"},
	unix.NL80211_ATTR_WIPHY: {Name: "WIPHY", Type: nlattr.Uint},
	unix.NL80211_ATTR_WIPHY_NAME: {Name: "WIPHY_NAME", Type: nlattr.StringNul},
	unix.NL80211_ATTR_IFINDEX: {Name: "IFINDEX", Type: nlattr.Uint},
	unix.NL80211_ATTR_IFNAME: {Name: "IFNAME", Type: nlattr.StringNul},
	unix.NL80211_ATTR_IFTYPE: {Name: "IFTYPE", Type: nlattr.Uint},
	unix.NL80211_ATTR_MAC: {Name: "MAC", Type: nlattr.Raw, Decode: nlattr.HardwareAddrDecoder},
	unix.NL80211_ATTR_KEY_DATA: {Name: "KEY_DATA"},
	unix.NL80211_ATTR_KEY_IDX: {Name: "KEY_IDX"},
	unix.NL80211_ATTR_KEY_CIPHER: {Name: "KEY_CIPHER"},
	unix.NL80211_ATTR_KEY_SEQ: {Name: "KEY_SEQ"},
	unix.NL80211_ATTR_KEY_DEFAULT: {Name: "KEY_DEFAULT"},
	unix.NL80211_ATTR_BEACON_INTERVAL: {Name: "BEACON_INTERVAL"},
	unix.NL80211_ATTR_DTIM_PERIOD: {Name: "DTIM_PERIOD"},
	unix.NL80211_ATTR_BEACON_HEAD: {Name: "BEACON_HEAD"},
	unix.NL80211_ATTR_BEACON_TAIL: {Name: "BEACON_TAIL"},
	unix.NL80211_ATTR_STA_AID: {Name: "STA_AID"},
	unix.NL80211_ATTR_STA_FLAGS: {Name: "STA_FLAGS"},
	unix.NL80211_ATTR_STA_LISTEN_INTERVAL: {Name: "STA_LISTEN_INTERVAL"},
	unix.NL80211_ATTR_STA_SUPPORTED_RATES: {Name: "STA_SUPPORTED_RATES"},
	unix.NL80211_ATTR_STA_VLAN: {Name: "STA_VLAN"},
	unix.NL80211_ATTR_STA_INFO: {Name: "STA_INFO"},
	unix.NL80211_ATTR_WIPHY_BANDS: {Name: "WIPHY_BANDS", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "BAND", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.NL80211_BAND_ATTR_FREQS: {Name: "FREQS", Type: nlattr.Nested, Nested: nlattr.Map{
				nlattr.Wildcard: {Name: "FQ", Type: nlattr.Nested, Nested: nlattr.Map{
					unix.NL80211_FREQUENCY_ATTR_FREQ: {Name: "FREQ", Type: nlattr.Uint},
					unix.NL80211_FREQUENCY_ATTR_DISABLED: {Name: "DISABLED", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_IR: {Name: "NO_IR", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_IR + 1: {Name: "_NO_IBSS", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_RADAR: {Name: "RADAR", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_MAX_TX_POWER: {Name: "MAX_TX_POWER", Type: nlattr.Uint},
					unix.NL80211_FREQUENCY_ATTR_DFS_STATE: {Name: "DFS_STATE", Type: nlattr.Uint},
					unix.NL80211_FREQUENCY_ATTR_DFS_TIME: {Name: "DFS_TIME", Type: nlattr.Uint},
					unix.NL80211_FREQUENCY_ATTR_NO_HT40_MINUS: {Name: "NO_HT40_MINUS", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_HT40_PLUS: {Name: "NO_HT40_PLUS", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_80MHZ: {Name: "NO_80MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_160MHZ: {Name: "NO_160MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_DFS_CAC_TIME: {Name: "DFS_CAC_TIME", Type: nlattr.Uint},
					unix.NL80211_FREQUENCY_ATTR_INDOOR_ONLY: {Name: "INDOOR_ONLY", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_IR_CONCURRENT: {Name: "IR_CONCURRENT", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_20MHZ: {Name: "NO_20MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_NO_10MHZ: {Name: "NO_10MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_WMM: {Name: "WMM"},
					unix.NL80211_FREQUENCY_ATTR_NO_HE: {Name: "NO_HE", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_OFFSET: {Name: "OFFSET", Type: nlattr.Uint},
					unix.NL80211_FREQUENCY_ATTR_1MHZ: {Name: "1MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_2MHZ: {Name: "2MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_4MHZ: {Name: "4MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_8MHZ: {Name: "8MHZ", Type: nlattr.Flag},
					unix.NL80211_FREQUENCY_ATTR_16MHZ: {Name: "16MHZ", Type: nlattr.Flag},
				}},
			}, Verbose: true},
			unix.NL80211_BAND_ATTR_RATES: {Name: "RATES", Type: nlattr.Nested, Nested: nlattr.Map{
				nlattr.Wildcard: {Name: "RATE", Type: nlattr.Nested, Nested: nlattr.Map{
					unix.NL80211_BITRATE_ATTR_RATE: {Name: "RATE", Type: nlattr.Uint},
					unix.NL80211_BITRATE_ATTR_2GHZ_SHORTPREAMBLE: {Name: "2GHZ_SHORTPREAMBLE", Type: nlattr.Flag},
				}},
			}},
			unix.NL80211_BAND_ATTR_HT_MCS_SET: {Name: "HT_MCS_SET"},
			unix.NL80211_BAND_ATTR_HT_CAPA: {Name: "HT_CAPA", Type: nlattr.Uint},
			unix.NL80211_BAND_ATTR_HT_AMPDU_FACTOR: {Name: "HT_AMPDU_FACTOR", Type: nlattr.Uint},
			unix.NL80211_BAND_ATTR_HT_AMPDU_DENSITY: {Name: "HT_AMPDU_DENSITY", Type: nlattr.Uint},
			unix.NL80211_BAND_ATTR_VHT_MCS_SET: {Name: "VHT_MCS_SET"},
			unix.NL80211_BAND_ATTR_VHT_CAPA: {Name: "VHT_CAPA", Type: nlattr.Uint},
			unix.NL80211_BAND_ATTR_IFTYPE_DATA: {Name: "IFTYPE_DATA"},
			unix.NL80211_BAND_ATTR_EDMG_CHANNELS: {Name: "EDMG_CHANNELS"},
			unix.NL80211_BAND_ATTR_EDMG_BW_CONFIG: {Name: "EDMG_BW_CONFIG"},
		}},
	}, Verbose: true},
	unix.NL80211_ATTR_MNTR_FLAGS: {Name: "MNTR_FLAGS"},
	unix.NL80211_ATTR_MESH_ID: {Name: "MESH_ID"},
	unix.NL80211_ATTR_STA_PLINK_ACTION: {Name: "STA_PLINK_ACTION"},
	unix.NL80211_ATTR_MPATH_NEXT_HOP: {Name: "MPATH_NEXT_HOP"},
	unix.NL80211_ATTR_MPATH_INFO: {Name: "MPATH_INFO"},
	unix.NL80211_ATTR_BSS_CTS_PROT: {Name: "BSS_CTS_PROT"},
	unix.NL80211_ATTR_BSS_SHORT_PREAMBLE: {Name: "BSS_SHORT_PREAMBLE"},
	unix.NL80211_ATTR_BSS_SHORT_SLOT_TIME: {Name: "BSS_SHORT_SLOT_TIME"},
	unix.NL80211_ATTR_HT_CAPABILITY: {Name: "HT_CAPABILITY"},
	unix.NL80211_ATTR_SUPPORTED_IFTYPES: {Name: "SUPPORTED_IFTYPES", Type: nlattr.Nested, Nested: iftypes},
	unix.NL80211_ATTR_REG_ALPHA2: {Name: "REG_ALPHA2"},
	unix.NL80211_ATTR_REG_RULES: {Name: "REG_RULES"},
	unix.NL80211_ATTR_MESH_CONFIG: {Name: "MESH_CONFIG"},
	unix.NL80211_ATTR_BSS_BASIC_RATES: {Name: "BSS_BASIC_RATES"},
	unix.NL80211_ATTR_WIPHY_TXQ_PARAMS: {Name: "WIPHY_TXQ_PARAMS"},
	unix.NL80211_ATTR_WIPHY_FREQ: {Name: "WIPHY_FREQ"},
	unix.NL80211_ATTR_WIPHY_CHANNEL_TYPE: {Name: "WIPHY_CHANNEL_TYPE"},
	unix.NL80211_ATTR_KEY_DEFAULT_MGMT: {Name: "KEY_DEFAULT_MGMT"},
	unix.NL80211_ATTR_MGMT_SUBTYPE: {Name: "MGMT_SUBTYPE"},
	unix.NL80211_ATTR_IE: {Name: "IE"},
	unix.NL80211_ATTR_MAX_NUM_SCAN_SSIDS: {Name: "MAX_NUM_SCAN_SSIDS", Type: nlattr.Uint},
	unix.NL80211_ATTR_SCAN_FREQUENCIES: {Name: "SCAN_FREQUENCIES", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "FQ", Type: nlattr.Uint},
	}, Verbose: true},
	unix.NL80211_ATTR_SCAN_SSIDS: {Name: "SCAN_SSIDS", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "SSID", Type: nlattr.String},
	}},
	unix.NL80211_ATTR_GENERATION: {Name: "GENERATION", Type: nlattr.Uint},
	unix.NL80211_ATTR_BSS: {Name: "BSS", Type: nlattr.Nested, Nested: nlattr.Map{
		unix.NL80211_BSS_BSSID: {Name: "BSSID", Type: nlattr.Raw, Decode: nlattr.HardwareAddrDecoder},
		unix.NL80211_BSS_FREQUENCY: {Name: "FREQUENCY", Type: nlattr.Uint},
		unix.NL80211_BSS_TSF: {Name: "TSF", Type: nlattr.Uint},
		unix.NL80211_BSS_BEACON_INTERVAL: {Name: "BEACON_INTERVAL", Type: nlattr.Uint},
		unix.NL80211_BSS_CAPABILITY: {Name: "CAPABILITY", Type: nlattr.Uint},
		unix.NL80211_BSS_INFORMATION_ELEMENTS: {Name: "INFORMATION_ELEMENTS", Type: nlattr.Struct, Decode: nlattr.ElementsDecoder},
		unix.NL80211_BSS_SIGNAL_MBM: {Name: "SIGNAL_MBM", Type: nlattr.Uint},
		unix.NL80211_BSS_SIGNAL_UNSPEC: {Name: "SIGNAL_UNSPEC", Type: nlattr.Uint},
		unix.NL80211_BSS_STATUS: {Name: "STATUS", Type: nlattr.Uint},
		unix.NL80211_BSS_SEEN_MS_AGO: {Name: "SEEN_MS_AGO", Type: nlattr.Uint},
		unix.NL80211_BSS_BEACON_IES: {Name: "BEACON_IES", Type: nlattr.Struct, Decode: nlattr.ElementsDecoder},
		unix.NL80211_BSS_CHAN_WIDTH: {Name: "CHAN_WIDTH", Type: nlattr.Uint},
		unix.NL80211_BSS_BEACON_TSF: {Name: "BEACON_TSF", Type: nlattr.Uint},
		unix.NL80211_BSS_PRESP_DATA: {Name: "PRESP_DATA", Type: nlattr.Flag},
		unix.NL80211_BSS_LAST_SEEN_BOOTTIME: {Name: "LAST_SEEN_BOOTTIME", Type: nlattr.Uint},
		unix.NL80211_BSS_PAD: {Name: "PAD"},
		unix.NL80211_BSS_PARENT_TSF: {Name: "PARENT_TSF"},
		unix.NL80211_BSS_PARENT_BSSID: {Name: "PARENT_BSSID"},
		unix.NL80211_BSS_CHAIN_SIGNAL: {Name: "CHAIN_SIGNAL", Type: nlattr.Nested, Nested: nlattr.Map{
			nlattr.Wildcard: {Name: "SIG", Type: nlattr.Uint},
		}},
		unix.NL80211_BSS_FREQUENCY_OFFSET: {Name: "FREQUENCY_OFFSET"},
	}},
	unix.NL80211_ATTR_REG_INITIATOR: {Name: "REG_INITIATOR"},
	unix.NL80211_ATTR_REG_TYPE: {Name: "REG_TYPE"},
	unix.NL80211_ATTR_SUPPORTED_COMMANDS: {Name: "SUPPORTED_COMMANDS", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "CMD", Type: nlattr.Uint},
	}},
	unix.NL80211_ATTR_FRAME: {Name: "FRAME"},
	unix.NL80211_ATTR_SSID: {Name: "SSID"},
	unix.NL80211_ATTR_AUTH_TYPE: {Name: "AUTH_TYPE"},
	unix.NL80211_ATTR_REASON_CODE: {Name: "REASON_CODE"},
	unix.NL80211_ATTR_KEY_TYPE: {Name: "KEY_TYPE"},
	unix.NL80211_ATTR_MAX_SCAN_IE_LEN: {Name: "MAX_SCAN_IE_LEN", Type: nlattr.Uint},
	unix.NL80211_ATTR_CIPHER_SUITES: {Name: "CIPHER_SUITES", Type: nlattr.Struct, Decode: decodeCipherSuites},
	unix.NL80211_ATTR_FREQ_BEFORE: {Name: "FREQ_BEFORE"},
	unix.NL80211_ATTR_FREQ_AFTER: {Name: "FREQ_AFTER"},
	unix.NL80211_ATTR_FREQ_FIXED: {Name: "FREQ_FIXED"},
	unix.NL80211_ATTR_WIPHY_RETRY_SHORT: {Name: "WIPHY_RETRY_SHORT", Type: nlattr.Uint},
	unix.NL80211_ATTR_WIPHY_RETRY_LONG: {Name: "WIPHY_RETRY_LONG", Type: nlattr.Uint},
	unix.NL80211_ATTR_WIPHY_FRAG_THRESHOLD: {Name: "WIPHY_FRAG_THRESHOLD", Type: nlattr.Uint},
	unix.NL80211_ATTR_WIPHY_RTS_THRESHOLD: {Name: "WIPHY_RTS_THRESHOLD", Type: nlattr.Uint},
	unix.NL80211_ATTR_TIMED_OUT: {Name: "TIMED_OUT"},
	unix.NL80211_ATTR_USE_MFP: {Name: "USE_MFP"},
	unix.NL80211_ATTR_STA_FLAGS2: {Name: "STA_FLAGS2"},
	unix.NL80211_ATTR_CONTROL_PORT: {Name: "CONTROL_PORT"},
	unix.NL80211_ATTR_TESTDATA: {Name: "TESTDATA"},
	unix.NL80211_ATTR_PRIVACY: {Name: "PRIVACY"},
	unix.NL80211_ATTR_DISCONNECTED_BY_AP: {Name: "DISCONNECTED_BY_AP"},
	unix.NL80211_ATTR_STATUS_CODE: {Name: "STATUS_CODE"},
	unix.NL80211_ATTR_CIPHER_SUITES_PAIRWISE: {Name: "CIPHER_SUITES_PAIRWISE"},
	unix.NL80211_ATTR_CIPHER_SUITE_GROUP: {Name: "CIPHER_SUITE_GROUP"},
	unix.NL80211_ATTR_WPA_VERSIONS: {Name: "WPA_VERSIONS"},
	unix.NL80211_ATTR_AKM_SUITES: {Name: "AKM_SUITES"},
	unix.NL80211_ATTR_REQ_IE: {Name: "REQ_IE"},
	unix.NL80211_ATTR_RESP_IE: {Name: "RESP_IE"},
	unix.NL80211_ATTR_PREV_BSSID: {Name: "PREV_BSSID"},
	unix.NL80211_ATTR_KEY: {Name: "KEY"},
	unix.NL80211_ATTR_KEYS: {Name: "KEYS"},
	unix.NL80211_ATTR_PID: {Name: "PID"},
	unix.NL80211_ATTR_4ADDR: {Name: "4ADDR"},
	unix.NL80211_ATTR_SURVEY_INFO: {Name: "SURVEY_INFO"},
	unix.NL80211_ATTR_PMKID: {Name: "PMKID"},
	unix.NL80211_ATTR_MAX_NUM_PMKIDS: {Name: "MAX_NUM_PMKIDS", Type: nlattr.Uint},
	unix.NL80211_ATTR_DURATION: {Name: "DURATION"},
	unix.NL80211_ATTR_COOKIE: {Name: "COOKIE"},
	unix.NL80211_ATTR_WIPHY_COVERAGE_CLASS: {Name: "WIPHY_COVERAGE_CLASS", Type: nlattr.Uint},
	unix.NL80211_ATTR_TX_RATES: {Name: "TX_RATES"},
	unix.NL80211_ATTR_FRAME_MATCH: {Name: "FRAME_MATCH"},
	unix.NL80211_ATTR_ACK: {Name: "ACK"},
	unix.NL80211_ATTR_PS_STATE: {Name: "PS_STATE"},
	unix.NL80211_ATTR_CQM: {Name: "CQM"},
	unix.NL80211_ATTR_LOCAL_STATE_CHANGE: {Name: "LOCAL_STATE_CHANGE"},
	unix.NL80211_ATTR_AP_ISOLATE: {Name: "AP_ISOLATE"},
	unix.NL80211_ATTR_WIPHY_TX_POWER_SETTING: {Name: "WIPHY_TX_POWER_SETTING"},
	unix.NL80211_ATTR_WIPHY_TX_POWER_LEVEL: {Name: "WIPHY_TX_POWER_LEVEL"},
	unix.NL80211_ATTR_TX_FRAME_TYPES: {Name: "TX_FRAME_TYPES", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "TFT", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.NL80211_ATTR_FRAME_TYPE: {Name: "FRAME_TYPE", Type: nlattr.Uint},
		}},
	}, Verbose: true},
	unix.NL80211_ATTR_RX_FRAME_TYPES: {Name: "RX_FRAME_TYPES", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "RFT", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.NL80211_ATTR_FRAME_TYPE: {Name: "FRAME_TYPE", Type: nlattr.Uint},
		}},
	}, Verbose: true},
	unix.NL80211_ATTR_FRAME_TYPE: {Name: "FRAME_TYPE", Type: nlattr.Uint},
	unix.NL80211_ATTR_CONTROL_PORT_ETHERTYPE: {Name: "CONTROL_PORT_ETHERTYPE"},
	unix.NL80211_ATTR_CONTROL_PORT_NO_ENCRYPT: {Name: "CONTROL_PORT_NO_ENCRYPT"},
	unix.NL80211_ATTR_SUPPORT_IBSS_RSN: {Name: "SUPPORT_IBSS_RSN"},
	unix.NL80211_ATTR_WIPHY_ANTENNA_TX: {Name: "WIPHY_ANTENNA_TX"},
	unix.NL80211_ATTR_WIPHY_ANTENNA_RX: {Name: "WIPHY_ANTENNA_RX"},
	unix.NL80211_ATTR_MCAST_RATE: {Name: "MCAST_RATE"},
	unix.NL80211_ATTR_OFFCHANNEL_TX_OK: {Name: "OFFCHANNEL_TX_OK", Type: nlattr.Flag},
	unix.NL80211_ATTR_BSS_HT_OPMODE: {Name: "BSS_HT_OPMODE"},
	unix.NL80211_ATTR_KEY_DEFAULT_TYPES: {Name: "KEY_DEFAULT_TYPES"},
	unix.NL80211_ATTR_MAX_REMAIN_ON_CHANNEL_DURATION: {Name: "MAX_REMAIN_ON_CHANNEL_DURATION", Type: nlattr.Uint},
	unix.NL80211_ATTR_MESH_SETUP: {Name: "MESH_SETUP"},
	unix.NL80211_ATTR_WIPHY_ANTENNA_AVAIL_TX: {Name: "WIPHY_ANTENNA_AVAIL_TX", Type: nlattr.Uint},
	unix.NL80211_ATTR_WIPHY_ANTENNA_AVAIL_RX: {Name: "WIPHY_ANTENNA_AVAIL_RX", Type: nlattr.Uint},
	unix.NL80211_ATTR_SUPPORT_MESH_AUTH: {Name: "SUPPORT_MESH_AUTH"},
	unix.NL80211_ATTR_STA_PLINK_STATE: {Name: "STA_PLINK_STATE"},
	unix.NL80211_ATTR_WOWLAN_TRIGGERS: {Name: "WOWLAN_TRIGGERS"},
	unix.NL80211_ATTR_WOWLAN_TRIGGERS_SUPPORTED: {Name: "WOWLAN_TRIGGERS_SUPPORTED", Type: nlattr.Nested, Nested: nlattr.Map{
		unix.NL80211_WOWLAN_TRIG_ANY: {Name: "ANY", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_DISCONNECT: {Name: "DISCONNECT", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_MAGIC_PKT: {Name: "MAGIC_PKT", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_PKT_PATTERN: {Name: "PKT_PATTERN", Type: nlattr.Struct, Decode: decodePatternSupport},
		unix.NL80211_WOWLAN_TRIG_GTK_REKEY_SUPPORTED: {Name: "GTK_REKEY_SUPPORTED", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_GTK_REKEY_FAILURE: {Name: "GTK_REKEY_FAILURE", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_EAP_IDENT_REQUEST: {Name: "EAP_IDENT_REQUEST", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_4WAY_HANDSHAKE: {Name: "4WAY_HANDSHAKE", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_RFKILL_RELEASE: {Name: "RFKILL_RELEASE", Type: nlattr.Flag},
		unix.NL80211_WOWLAN_TRIG_TCP_CONNECTION: {Name: "TCP_CONNECTION", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.NL80211_WOWLAN_TCP_SRC_IPV4: {Name: "SRC_IPV4"},
			unix.NL80211_WOWLAN_TCP_DST_IPV4: {Name: "DST_IPV4"},
			unix.NL80211_WOWLAN_TCP_DST_MAC: {Name: "DST_MAC"},
			unix.NL80211_WOWLAN_TCP_SRC_PORT: {Name: "SRC_PORT", Type: nlattr.Uint},
			unix.NL80211_WOWLAN_TCP_DST_PORT: {Name: "DST_PORT", Type: nlattr.Uint},
			unix.NL80211_WOWLAN_TCP_DATA_PAYLOAD: {Name: "DATA_PAYLOAD"},
			unix.NL80211_WOWLAN_TCP_DATA_PAYLOAD_SEQ: {Name: "DATA_PAYLOAD_SEQ"},
			unix.NL80211_WOWLAN_TCP_DATA_PAYLOAD_TOKEN: {Name: "DATA_PAYLOAD_TOKEN"},
			unix.NL80211_WOWLAN_TCP_DATA_INTERVAL: {Name: "DATA_INTERVAL", Type: nlattr.Uint},
			unix.NL80211_WOWLAN_TCP_WAKE_PAYLOAD: {Name: "WAKE_PAYLOAD"},
			unix.NL80211_WOWLAN_TCP_WAKE_MASK: {Name: "WAKE_MASK"},
		}},
		unix.NL80211_WOWLAN_TRIG_NET_DETECT: {Name: "NET_DETECT", Type: nlattr.Uint},
	}},
	unix.NL80211_ATTR_SCHED_SCAN_INTERVAL: {Name: "SCHED_SCAN_INTERVAL"},
	unix.NL80211_ATTR_INTERFACE_COMBINATIONS: {Name: "INTERFACE_COMBINATIONS", Type: nlattr.Nested, Nested: nlattr.Map{
		nlattr.Wildcard: {Name: "IC", Type: nlattr.Nested, Nested: nlattr.Map{
			unix.NL80211_IFACE_COMB_UNSPEC: {Name: "UNSPEC"},
			unix.NL80211_IFACE_COMB_LIMITS: {Name: "LIMITS", Type: nlattr.Nested, Nested: nlattr.Map{
				nlattr.Wildcard: {Name: "LT", Type: nlattr.Nested, Nested: nlattr.Map{
					unix.NL80211_IFACE_LIMIT_UNSPEC: {Name: "UNSPEC"},
					unix.NL80211_IFACE_LIMIT_MAX: {Name: "MAX", Type: nlattr.Uint},
					unix.NL80211_IFACE_LIMIT_TYPES: {Name: "TYPES", Type: nlattr.Nested, Nested: iftypes},
				}},
			}},
			unix.NL80211_IFACE_COMB_MAXNUM: {Name: "MAXNUM", Type: nlattr.Uint},
			unix.NL80211_IFACE_COMB_STA_AP_BI_MATCH: {Name: "STA_AP_BI_MATCH", Type: nlattr.Flag},
			unix.NL80211_IFACE_COMB_NUM_CHANNELS: {Name: "NUM_CHANNELS", Type: nlattr.Uint},
			unix.NL80211_IFACE_COMB_RADAR_DETECT_WIDTHS: {Name: "RADAR_DETECT_WIDTHS", Type: nlattr.Uint},
			unix.NL80211_IFACE_COMB_RADAR_DETECT_REGIONS: {Name: "RADAR_DETECT_REGIONS", Type: nlattr.Uint},
			unix.NL80211_IFACE_COMB_BI_MIN_GCD: {Name: "BI_MIN_GCD"},
		}},
	}, Verbose: true},
	unix.NL80211_ATTR_SOFTWARE_IFTYPES: {Name: "SOFTWARE_IFTYPES", Type: nlattr.Nested, Nested: iftypes},
	unix.NL80211_ATTR_REKEY_DATA: {Name: "REKEY_DATA"},
	unix.NL80211_ATTR_MAX_NUM_SCHED_SCAN_SSIDS: {Name: "MAX_NUM_SCHED_SCAN_SSIDS", Type: nlattr.Uint},
	unix.NL80211_ATTR_MAX_SCHED_SCAN_IE_LEN: {Name: "MAX_SCHED_SCAN_IE_LEN", Type: nlattr.Uint},
	unix.NL80211_ATTR_SCAN_SUPP_RATES: {Name: "SCAN_SUPP_RATES"},
	unix.NL80211_ATTR_HIDDEN_SSID: {Name: "HIDDEN_SSID"},
	unix.NL80211_ATTR_IE_PROBE_RESP: {Name: "IE_PROBE_RESP"},
	unix.NL80211_ATTR_IE_ASSOC_RESP: {Name: "IE_ASSOC_RESP"},
	unix.NL80211_ATTR_STA_WME: {Name: "STA_WME"},
	unix.NL80211_ATTR_SUPPORT_AP_UAPSD: {Name: "SUPPORT_AP_UAPSD"},
	unix.NL80211_ATTR_ROAM_SUPPORT: {Name: "ROAM_SUPPORT", Type: nlattr.Flag},
	unix.NL80211_ATTR_SCHED_SCAN_MATCH: {Name: "SCHED_SCAN_MATCH"},
	unix.NL80211_ATTR_MAX_MATCH_SETS: {Name: "MAX_MATCH_SETS", Type: nlattr.Uint},
	unix.NL80211_ATTR_PMKSA_CANDIDATE: {Name: "PMKSA_CANDIDATE"},
	unix.NL80211_ATTR_TX_NO_CCK_RATE: {Name: "TX_NO_CCK_RATE"},
	unix.NL80211_ATTR_TDLS_ACTION: {Name: "TDLS_ACTION"},
	unix.NL80211_ATTR_TDLS_DIALOG_TOKEN: {Name: "TDLS_DIALOG_TOKEN"},
	unix.NL80211_ATTR_TDLS_OPERATION: {Name: "TDLS_OPERATION"},
	unix.NL80211_ATTR_TDLS_SUPPORT: {Name: "TDLS_SUPPORT", Type: nlattr.Flag},
	unix.NL80211_ATTR_TDLS_EXTERNAL_SETUP: {Name: "TDLS_EXTERNAL_SETUP", Type: nlattr.Flag},
	unix.NL80211_ATTR_DEVICE_AP_SME: {Name: "DEVICE_AP_SME", Type: nlattr.Uint},
	unix.NL80211_ATTR_DONT_WAIT_FOR_ACK: {Name: "DONT_WAIT_FOR_ACK"},
	unix.NL80211_ATTR_FEATURE_FLAGS: {Name: "FEATURE_FLAGS", Type: nlattr.Uint},
	unix.NL80211_ATTR_PROBE_RESP_OFFLOAD: {Name: "PROBE_RESP_OFFLOAD", Type: nlattr.Uint},
	unix.NL80211_ATTR_PROBE_RESP: {Name: "PROBE_RESP"},
	unix.NL80211_ATTR_DFS_REGION: {Name: "DFS_REGION"},
	unix.NL80211_ATTR_DISABLE_HT: {Name: "DISABLE_HT"},
	unix.NL80211_ATTR_HT_CAPABILITY_MASK: {Name: "HT_CAPABILITY_MASK"},
	unix.NL80211_ATTR_NOACK_MAP: {Name: "NOACK_MAP"},
	unix.NL80211_ATTR_INACTIVITY_TIMEOUT: {Name: "INACTIVITY_TIMEOUT"},
	unix.NL80211_ATTR_RX_SIGNAL_DBM: {Name: "RX_SIGNAL_DBM"},
	unix.NL80211_ATTR_BG_SCAN_PERIOD: {Name: "BG_SCAN_PERIOD"},
	unix.NL80211_ATTR_WDEV: {Name: "WDEV", Type: nlattr.Uint},
	unix.NL80211_ATTR_USER_REG_HINT_TYPE: {Name: "USER_REG_HINT_TYPE"},
	unix.NL80211_ATTR_CONN_FAILED_REASON: {Name: "CONN_FAILED_REASON"},
	unix.NL80211_ATTR_AUTH_DATA: {Name: "AUTH_DATA"},
	unix.NL80211_ATTR_VHT_CAPABILITY: {Name: "VHT_CAPABILITY"},
	unix.NL80211_ATTR_SCAN_FLAGS: {Name: "SCAN_FLAGS", Type: nlattr.Uint},
	unix.NL80211_ATTR_CHANNEL_WIDTH: {Name: "CHANNEL_WIDTH"},
	unix.NL80211_ATTR_CENTER_FREQ1: {Name: "CENTER_FREQ1"},
	unix.NL80211_ATTR_CENTER_FREQ2: {Name: "CENTER_FREQ2"},
	unix.NL80211_ATTR_P2P_CTWINDOW: {Name: "P2P_CTWINDOW"},
	unix.NL80211_ATTR_P2P_OPPPS: {Name: "P2P_OPPPS"},
	unix.NL80211_ATTR_LOCAL_MESH_POWER_MODE: {Name: "LOCAL_MESH_POWER_MODE"},
	unix.NL80211_ATTR_ACL_POLICY: {Name: "ACL_POLICY"},
	unix.NL80211_ATTR_MAC_ADDRS: {Name: "MAC_ADDRS"},
	unix.NL80211_ATTR_MAC_ACL_MAX: {Name: "MAC_ACL_MAX", Type: nlattr.Uint},
	unix.NL80211_ATTR_RADAR_EVENT: {Name: "RADAR_EVENT"},
	unix.NL80211_ATTR_EXT_CAPA: {Name: "EXT_CAPA"},
	unix.NL80211_ATTR_EXT_CAPA_MASK: {Name: "EXT_CAPA_MASK"},
	unix.NL80211_ATTR_STA_CAPABILITY: {Name: "STA_CAPABILITY"},
	unix.NL80211_ATTR_STA_EXT_CAPABILITY: {Name: "STA_EXT_CAPABILITY"},
	unix.NL80211_ATTR_PROTOCOL_FEATURES: {Name: "PROTOCOL_FEATURES", Type: nlattr.Uint},
	unix.NL80211_ATTR_SPLIT_WIPHY_DUMP: {Name: "SPLIT_WIPHY_DUMP", Type: nlattr.Flag},
	unix.NL80211_ATTR_DISABLE_VHT: {Name: "DISABLE_VHT", Type: nlattr.Flag},
	unix.NL80211_ATTR_VHT_CAPABILITY_MASK: {Name: "VHT_CAPABILITY_MASK"},
	unix.NL80211_ATTR_MDID: {Name: "MDID"},
	unix.NL80211_ATTR_IE_RIC: {Name: "IE_RIC"},
	unix.NL80211_ATTR_CRIT_PROT_ID: {Name: "CRIT_PROT_ID"},
	unix.NL80211_ATTR_MAX_CRIT_PROT_DURATION: {Name: "MAX_CRIT_PROT_DURATION"},
	unix.NL80211_ATTR_PEER_AID: {Name: "PEER_AID"},
	unix.NL80211_ATTR_COALESCE_RULE: {Name: "COALESCE_RULE"},
	unix.NL80211_ATTR_CH_SWITCH_COUNT: {Name: "CH_SWITCH_COUNT"},
	unix.NL80211_ATTR_CH_SWITCH_BLOCK_TX: {Name: "CH_SWITCH_BLOCK_TX"},
	unix.NL80211_ATTR_CSA_IES: {Name: "CSA_IES"},
	unix.NL80211_ATTR_CNTDWN_OFFS_BEACON: {Name: "CNTDWN_OFFS_BEACON"},
	unix.NL80211_ATTR_CNTDWN_OFFS_PRESP: {Name: "CNTDWN_OFFS_PRESP"},
	unix.NL80211_ATTR_RXMGMT_FLAGS: {Name: "RXMGMT_FLAGS"},
	unix.NL80211_ATTR_STA_SUPPORTED_CHANNELS: {Name: "STA_SUPPORTED_CHANNELS"},
	unix.NL80211_ATTR_STA_SUPPORTED_OPER_CLASSES: {Name: "STA_SUPPORTED_OPER_CLASSES"},
	unix.NL80211_ATTR_HANDLE_DFS: {Name: "HANDLE_DFS"},
	unix.NL80211_ATTR_SUPPORT_5_MHZ: {Name: "SUPPORT_5_MHZ"},
	unix.NL80211_ATTR_SUPPORT_10_MHZ: {Name: "SUPPORT_10_MHZ"},
	unix.NL80211_ATTR_OPMODE_NOTIF: {Name: "OPMODE_NOTIF"},
	unix.NL80211_ATTR_VENDOR_ID: {Name: "VENDOR_ID"},
	unix.NL80211_ATTR_VENDOR_SUBCMD: {Name: "VENDOR_SUBCMD"},
	unix.NL80211_ATTR_VENDOR_DATA: {Name: "VENDOR_DATA", Type: nlattr.Raw, Verbose: true},
	unix.NL80211_ATTR_VENDOR_EVENTS: {Name: "VENDOR_EVENTS", Type: nlattr.Nested, Verbose: true},
	unix.NL80211_ATTR_QOS_MAP: {Name: "QOS_MAP"},
	unix.NL80211_ATTR_MAC_HINT: {Name: "MAC_HINT"},
	unix.NL80211_ATTR_WIPHY_FREQ_HINT: {Name: "WIPHY_FREQ_HINT"},
	unix.NL80211_ATTR_MAX_AP_ASSOC_STA: {Name: "MAX_AP_ASSOC_STA"},
	unix.NL80211_ATTR_TDLS_PEER_CAPABILITY: {Name: "TDLS_PEER_CAPABILITY"},
	unix.NL80211_ATTR_SOCKET_OWNER: {Name: "SOCKET_OWNER"},
	unix.NL80211_ATTR_CSA_C_OFFSETS_TX: {Name: "CSA_C_OFFSETS_TX"},
	unix.NL80211_ATTR_MAX_CSA_COUNTERS: {Name: "MAX_CSA_COUNTERS"},
	unix.NL80211_ATTR_TDLS_INITIATOR: {Name: "TDLS_INITIATOR"},
	unix.NL80211_ATTR_USE_RRM: {Name: "USE_RRM"},
	unix.NL80211_ATTR_WIPHY_DYN_ACK: {Name: "WIPHY_DYN_ACK"},
	unix.NL80211_ATTR_TSID: {Name: "TSID"},
	unix.NL80211_ATTR_USER_PRIO: {Name: "USER_PRIO"},
	unix.NL80211_ATTR_ADMITTED_TIME: {Name: "ADMITTED_TIME"},
	unix.NL80211_ATTR_SMPS_MODE: {Name: "SMPS_MODE"},
	unix.NL80211_ATTR_OPER_CLASS: {Name: "OPER_CLASS"},
	unix.NL80211_ATTR_MAC_MASK: {Name: "MAC_MASK"},
	unix.NL80211_ATTR_WIPHY_SELF_MANAGED_REG: {Name: "WIPHY_SELF_MANAGED_REG"},
	unix.NL80211_ATTR_EXT_FEATURES: {Name: "EXT_FEATURES"},
	unix.NL80211_ATTR_SURVEY_RADIO_STATS: {Name: "SURVEY_RADIO_STATS"},
	unix.NL80211_ATTR_NETNS_FD: {Name: "NETNS_FD"},
	unix.NL80211_ATTR_SCHED_SCAN_DELAY: {Name: "SCHED_SCAN_DELAY"},
	unix.NL80211_ATTR_REG_INDOOR: {Name: "REG_INDOOR"},
	unix.NL80211_ATTR_MAX_NUM_SCHED_SCAN_PLANS: {Name: "MAX_NUM_SCHED_SCAN_PLANS", Type: nlattr.Uint},
	unix.NL80211_ATTR_MAX_SCAN_PLAN_INTERVAL: {Name: "MAX_SCAN_PLAN_INTERVAL", Type: nlattr.Uint},
	unix.NL80211_ATTR_MAX_SCAN_PLAN_ITERATIONS: {Name: "MAX_SCAN_PLAN_ITERATIONS", Type: nlattr.Uint},
	unix.NL80211_ATTR_SCHED_SCAN_PLANS: {Name: "SCHED_SCAN_PLANS"},
	unix.NL80211_ATTR_PBSS: {Name: "PBSS"},
	unix.NL80211_ATTR_BSS_SELECT: {Name: "BSS_SELECT"},
	unix.NL80211_ATTR_STA_SUPPORT_P2P_PS: {Name: "STA_SUPPORT_P2P_PS"},
	unix.NL80211_ATTR_PAD: {Name: "PAD"},
	unix.NL80211_ATTR_IFTYPE_EXT_CAPA: {Name: "IFTYPE_EXT_CAPA"},
	unix.NL80211_ATTR_MU_MIMO_GROUP_DATA: {Name: "MU_MIMO_GROUP_DATA"},
	unix.NL80211_ATTR_MU_MIMO_FOLLOW_MAC_ADDR: {Name: "MU_MIMO_FOLLOW_MAC_ADDR"},
	unix.NL80211_ATTR_SCAN_START_TIME_TSF: {Name: "SCAN_START_TIME_TSF"},
	unix.NL80211_ATTR_SCAN_START_TIME_TSF_BSSID: {Name: "SCAN_START_TIME_TSF_BSSID"},
	unix.NL80211_ATTR_MEASUREMENT_DURATION: {Name: "MEASUREMENT_DURATION"},
	unix.NL80211_ATTR_MEASUREMENT_DURATION_MANDATORY: {Name: "MEASUREMENT_DURATION_MANDATORY"},
	unix.NL80211_ATTR_MESH_PEER_AID: {Name: "MESH_PEER_AID"},
	unix.NL80211_ATTR_NAN_MASTER_PREF: {Name: "NAN_MASTER_PREF"},
	unix.NL80211_ATTR_BANDS: {Name: "BANDS"},
	unix.NL80211_ATTR_NAN_FUNC: {Name: "NAN_FUNC"},
	unix.NL80211_ATTR_NAN_MATCH: {Name: "NAN_MATCH"},
	unix.NL80211_ATTR_FILS_KEK: {Name: "FILS_KEK"},
	unix.NL80211_ATTR_FILS_NONCES: {Name: "FILS_NONCES"},
	unix.NL80211_ATTR_MULTICAST_TO_UNICAST_ENABLED: {Name: "MULTICAST_TO_UNICAST_ENABLED"},
	unix.NL80211_ATTR_BSSID: {Name: "BSSID"},
	unix.NL80211_ATTR_SCHED_SCAN_RELATIVE_RSSI: {Name: "SCHED_SCAN_RELATIVE_RSSI"},
	unix.NL80211_ATTR_SCHED_SCAN_RSSI_ADJUST: {Name: "SCHED_SCAN_RSSI_ADJUST"},
	unix.NL80211_ATTR_TIMEOUT_REASON: {Name: "TIMEOUT_REASON"},
	unix.NL80211_ATTR_FILS_ERP_USERNAME: {Name: "FILS_ERP_USERNAME"},
	unix.NL80211_ATTR_FILS_ERP_REALM: {Name: "FILS_ERP_REALM"},
	unix.NL80211_ATTR_FILS_ERP_NEXT_SEQ_NUM: {Name: "FILS_ERP_NEXT_SEQ_NUM"},
	unix.NL80211_ATTR_FILS_ERP_RRK: {Name: "FILS_ERP_RRK"},
	unix.NL80211_ATTR_FILS_CACHE_ID: {Name: "FILS_CACHE_ID"},
	unix.NL80211_ATTR_PMK: {Name: "PMK"},
	unix.NL80211_ATTR_SCHED_SCAN_MULTI: {Name: "SCHED_SCAN_MULTI"},
	unix.NL80211_ATTR_SCHED_SCAN_MAX_REQS: {Name: "SCHED_SCAN_MAX_REQS"},
	unix.NL80211_ATTR_WANT_1X_4WAY_HS: {Name: "WANT_1X_4WAY_HS"},
	unix.NL80211_ATTR_PMKR0_NAME: {Name: "PMKR0_NAME"},
	unix.NL80211_ATTR_PORT_AUTHORIZED: {Name: "PORT_AUTHORIZED"},
	unix.NL80211_ATTR_EXTERNAL_AUTH_ACTION: {Name: "EXTERNAL_AUTH_ACTION"},
	unix.NL80211_ATTR_EXTERNAL_AUTH_SUPPORT: {Name: "EXTERNAL_AUTH_SUPPORT"},
	unix.NL80211_ATTR_NSS: {Name: "NSS"},
	unix.NL80211_ATTR_ACK_SIGNAL: {Name: "ACK_SIGNAL"},
	unix.NL80211_ATTR_CONTROL_PORT_OVER_NL80211: {Name: "CONTROL_PORT_OVER_NL80211"},
	unix.NL80211_ATTR_TXQ_STATS: {Name: "TXQ_STATS"},
	unix.NL80211_ATTR_TXQ_LIMIT: {Name: "TXQ_LIMIT"},
	unix.NL80211_ATTR_TXQ_MEMORY_LIMIT: {Name: "TXQ_MEMORY_LIMIT"},
	unix.NL80211_ATTR_TXQ_QUANTUM: {Name: "TXQ_QUANTUM"},
	unix.NL80211_ATTR_HE_CAPABILITY: {Name: "HE_CAPABILITY"},
	unix.NL80211_ATTR_FTM_RESPONDER: {Name: "FTM_RESPONDER"},
	unix.NL80211_ATTR_FTM_RESPONDER_STATS: {Name: "FTM_RESPONDER_STATS"},
	unix.NL80211_ATTR_TIMEOUT: {Name: "TIMEOUT"},
	unix.NL80211_ATTR_PEER_MEASUREMENTS: {Name: "PEER_MEASUREMENTS"},
	unix.NL80211_ATTR_AIRTIME_WEIGHT: {Name: "AIRTIME_WEIGHT"},
	unix.NL80211_ATTR_STA_TX_POWER_SETTING: {Name: "STA_TX_POWER_SETTING"},
	unix.NL80211_ATTR_STA_TX_POWER: {Name: "STA_TX_POWER"},
	unix.NL80211_ATTR_SAE_PASSWORD: {Name: "SAE_PASSWORD"},
	unix.NL80211_ATTR_TWT_RESPONDER: {Name: "TWT_RESPONDER"},
	unix.NL80211_ATTR_HE_OBSS_PD: {Name: "HE_OBSS_PD"},
	unix.NL80211_ATTR_WIPHY_EDMG_CHANNELS: {Name: "WIPHY_EDMG_CHANNELS"},
	unix.NL80211_ATTR_WIPHY_EDMG_BW_CONFIG: {Name: "WIPHY_EDMG_BW_CONFIG"},
	unix.NL80211_ATTR_VLAN_ID: {Name: "VLAN_ID"},
	unix.NL80211_ATTR_HE_BSS_COLOR: {Name: "HE_BSS_COLOR"},
	unix.NL80211_ATTR_IFTYPE_AKM_SUITES: {Name: "IFTYPE_AKM_SUITES"},
	unix.NL80211_ATTR_TID_CONFIG: {Name: "TID_CONFIG"},
	unix.NL80211_ATTR_CONTROL_PORT_NO_PREAUTH: {Name: "CONTROL_PORT_NO_PREAUTH"},
	unix.NL80211_ATTR_PMK_LIFETIME: {Name: "PMK_LIFETIME"},
	unix.NL80211_ATTR_PMK_REAUTH_THRESHOLD: {Name: "PMK_REAUTH_THRESHOLD"},
	unix.NL80211_ATTR_RECEIVE_MULTICAST: {Name: "RECEIVE_MULTICAST"},
	unix.NL80211_ATTR_WIPHY_FREQ_OFFSET: {Name: "WIPHY_FREQ_OFFSET"},
	unix.NL80211_ATTR_CENTER_FREQ1_OFFSET: {Name: "CENTER_FREQ1_OFFSET"},
	unix.NL80211_ATTR_SCAN_FREQ_KHZ: {Name: "SCAN_FREQ_KHZ"},
	unix.NL80211_ATTR_HE_6GHZ_CAPABILITY: {Name: "HE_6GHZ_CAPABILITY"},
	unix.NL80211_ATTR_FILS_DISCOVERY: {Name: "FILS_DISCOVERY"},
	unix.NL80211_ATTR_UNSOL_BCAST_PROBE_RESP: {Name: "UNSOL_BCAST_PROBE_RESP"},
	unix.NL80211_ATTR_S1G_CAPABILITY: {Name: "S1G_CAPABILITY"},
	unix.NL80211_ATTR_S1G_CAPABILITY_MASK: {Name: "S1G_CAPABILITY_MASK"},
}
