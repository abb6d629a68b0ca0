package gitutil

import (
	"net/url"
	"strings"
)

// RedactURL hides the password of a remote URL so it can be logged. Local
// paths and scp-style SSH remotes (git@host:owner/repo.git) carry no
// credentials and are returned unchanged.
func RedactURL(raw string) string {
	if !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		// A bare user component is commonly an access token.
		u.User = url.User("xxxxx")
		return u.String()
	}
	return u.Redacted()
}

// RedactArgs returns a copy of args with every URL argument redacted.
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = RedactURL(a)
	}
	return out
}
