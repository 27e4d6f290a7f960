package types

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
)

// Format names a well-known string layout that can be attached to a string
// type as a constraint. The value doubles as the JSON Schema "format" field.
type Format string

const (
	FormatEmail    Format = "email"
	FormatURI      Format = "uri"
	FormatUUID     Format = "uuid"
	FormatDate     Format = "date"
	FormatDateTime Format = "date-time"
	FormatIPv4     Format = "ipv4"
	FormatIPv6     Format = "ipv6"
)

// RFC-light: good enough to reject obvious garbage without chasing the full grammar.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Versioned UUID: version nibble 1-5, variant nibble 8/9/a/b.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

var (
	isoDatePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt]\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:\d{2})?$`)
)

// checkFormat validates s against a named format, returning a reason string
// when it does not conform.
func checkFormat(f Format, s string) (string, bool) {
	switch f {
	case FormatEmail:
		if !emailPattern.MatchString(s) {
			return fmt.Sprintf("value %q is not a valid email address", s), false
		}
	case FormatURI:
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" {
			return fmt.Sprintf("value %q is not a valid URI", s), false
		}
	case FormatUUID:
		if !uuidPattern.MatchString(s) {
			return fmt.Sprintf("value %q is not a valid UUID", s), false
		}
	case FormatDate:
		if !isoDatePattern.MatchString(s) {
			return fmt.Sprintf("value %q is not a valid date (expected YYYY-MM-DD)", s), false
		}
	case FormatDateTime:
		if !isoDateTimePattern.MatchString(s) {
			return fmt.Sprintf("value %q is not a valid datetime", s), false
		}
	case FormatIPv4:
		ip := net.ParseIP(s)
		if ip == nil || ip.To4() == nil {
			return fmt.Sprintf("value %q is not a valid IPv4 address", s), false
		}
	case FormatIPv6:
		ip := net.ParseIP(s)
		if ip == nil || ip.To4() != nil {
			return fmt.Sprintf("value %q is not a valid IPv6 address", s), false
		}
	default:
		return fmt.Sprintf("unknown format %q", string(f)), false
	}
	return "", true
}
