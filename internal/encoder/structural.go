package encoder

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// EncodeStructural encodes an absolute URL component by component. The
// scheme, the "://" separator and the path, query and fragment delimiters
// are kept, the host is converted to its ASCII (punycode) form and
// existing %XX escapes are preserved. Input that is not an absolute
// hierarchical URL is handed to Encode.
func EncodeStructural(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" || u.Opaque != "" {
		return Encode(s)
	}

	host, err := asciiHost(u)
	if err != nil {
		return Encode(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(strings.ToLower(u.Scheme))
	b.WriteString("://")
	if u.User != nil {
		b.WriteString(u.User.String())
		b.WriteByte('@')
	}
	b.WriteString(host)
	b.WriteString(escape(u.EscapedPath(), "/%"))
	if u.ForceQuery || u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(escape(u.RawQuery, "&=+%"))
	}
	// url.URL cannot tell "x#" from "x", so look at the input.
	if u.Fragment != "" || strings.HasSuffix(s, "#") {
		b.WriteByte('#')
		b.WriteString(escape(u.EscapedFragment(), "/?%"))
	}
	return b.String()
}

func asciiHost(u *url.URL) (string, error) {
	name := u.Hostname()
	port := u.Port()

	if strings.Contains(name, ":") {
		// IPv6 literal
		if port != "" {
			return net.JoinHostPort(name, port), nil
		}
		return "[" + name + "]", nil
	}

	ascii, err := idna.ToASCII(name)
	if err != nil {
		return "", err
	}
	if port != "" {
		return net.JoinHostPort(ascii, port), nil
	}
	return ascii, nil
}
