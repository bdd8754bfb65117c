// Package privacy reduces farmer and client identifiers to forms that are
// safe to log or return.
package privacy

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// AnonymizeIP truncates an address to its network: IPv4 keeps the /24
// ("192.168.1.47" -> "192.168.1.0"), IPv6 keeps the /48 prefix.
//
// Returns "invalid" for unparseable input and "unknown" for an empty value.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "invalid"
	}

	if v4 := parsed.To4(); v4 != nil {
		return fmt.Sprintf("%d.%d.%d.0", v4[0], v4[1], v4[2])
	}

	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::",
		parsed[0], parsed[1],
		parsed[2], parsed[3],
		parsed[4], parsed[5])
}

// ClientIP returns the anonymized address of the direct peer. Forwarding
// headers are ignored.
func ClientIP(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return AnonymizeIP(host)
}

// MaskMobile keeps the last four digits of a mobile number
// ("9437012345" -> "******2345"). Anything that is not a ten digit number
// is masked completely.
func MaskMobile(mobile string) string {
	if len(mobile) != 10 || strings.Trim(mobile, "0123456789") != "" {
		return strings.Repeat("*", len(mobile))
	}
	return strings.Repeat("*", 6) + mobile[6:]
}
