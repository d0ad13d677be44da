package validator

import (
	"net/mail"
	"strings"
)

// Email validates that a string is a valid email address using RFC 5322.
func Email() Rule {
	return Rule{
		Name: "email",
		Check: func(value any) bool {
			s, ok := toString(value)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			addr, err := mail.ParseAddress(s)
			if err != nil {
				return false
			}

			// Reject display-name forms such as "Bob <bob@example.com>"
			if addr.Address != s {
				return false
			}

			localPart, domain, found := strings.Cut(addr.Address, "@")
			if !found || localPart == "" {
				return false
			}

			// Domain must contain at least one dot and cannot start/end with dot
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Message: "must be a valid email address",
	}
}
