// Package smburl parses and composes SMB URLs (spec.md §3.8): strings of
// the form
//
//	smb://[[[authdomain;]username[:password]@]hostname[:port][/path]][?context][#fragment]
//
// Grounded on original_source/carnaval/smb/SMB_URL.py's smb_url class and
// parseContext/composeContext functions, reworked from Python's
// parse-on-construct-and-mutate-via-properties object into an immutable
// value returned by Parse plus a Compose method, and from its
// exception-as-warning pattern (a successfully parsed URL that also raises
// SMBerror(1000) for an ignorable fragment) into a (value, warning, error)
// return shape — idiomatic Go has no way to "raise after returning", so
// the warning becomes a second, non-nil-but-survivable error value.
package smburl

import (
	"strconv"
	"strings"
)

// ContextPair is one key=value entry of a URL's NBT context string.
type ContextPair struct {
	Key   string
	Value string
}

// URL is a parsed SMB URL.
type URL struct {
	AuthDomain string
	Username   string
	Password   string
	Hostname   string
	Port       int // 0 means unset
	Path       string
	Context    []ContextPair
}

// Warning is returned alongside a successfully parsed URL when it contains
// a recognized-but-meaningless construct — currently only a URL fragment,
// which has no meaning in the SMB URL format (spec.md §3.8).
type Warning struct {
	Message string
}

func (w *Warning) Error() string { return w.Message }

// Parse parses an SMB URL string. An empty string is equivalent to
// "smb://", a local Browse Service query with every field unset.
//
// Parse returns a non-nil *Warning (not a hard error) when the URL parses
// successfully but contains a fragment; callers that don't care about
// fragments can ignore a non-nil warning so long as err is nil.
func Parse(raw string) (*URL, *Warning, error) {
	u := &URL{}
	if raw == "" {
		return u, nil, nil
	}
	tmp := strings.TrimLeft(raw, " \t")

	scheme, rest, ok := partition(tmp, "//")
	if !ok {
		return nil, nil, errSyntax("missing initial double slash ('//')", nil)
	}
	if scheme != "" {
		s := strings.ToLower(scheme)
		if s != "smb" && s != "smb:" {
			return nil, nil, errSyntax("invalid scheme", scheme)
		}
	}

	body, fragment, hadFragment := partitionOptional(rest, "#")
	body, contextStr, _ := partitionOptional(body, "?")
	netloc, path, hadPath := partitionOptional(body, "/")

	username, hostname := rpartitionOptional(netloc, "@")
	authdomain, username := rpartitionOptional(username, ";")
	username, password := partitionColon(username)
	hostname, portStr := partitionColon(hostname)

	if hadPath && hostname == "" {
		return nil, nil, errSyntax("path provided, but no hostname given", nil)
	}

	if portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, nil, errSyntax("port is not numeric", portStr)
		}
		if port < 0 || port > 0xFFFF {
			return nil, nil, errSyntax("port out of range 0..65535", port)
		}
		u.Port = port
	}

	u.AuthDomain = authdomain
	u.Username = username
	u.Password = password
	u.Hostname = hostname
	if hadPath {
		u.Path = "/" + strings.TrimLeft(path, "/")
	}
	u.Context = ParseContext(contextStr)

	if hadFragment {
		return u, &Warning{Message: "fragments have no meaning in the SMB URL format: " + fragment}, nil
	}
	return u, nil, nil
}

// Compose builds the URL string from u's fields.
func (u *URL) Compose() (string, error) {
	if u.Path != "" && u.Hostname == "" {
		return "", errSyntax("pathname given, but no hostname specified", nil)
	}
	var b strings.Builder
	b.WriteString("smb://")
	if u.AuthDomain != "" {
		b.WriteString(u.AuthDomain)
		b.WriteByte(';')
	}
	if u.Username != "" {
		b.WriteString(u.Username)
		if u.Password != "" {
			b.WriteByte(':')
			b.WriteString(u.Password)
		}
		b.WriteByte('@')
	}
	b.WriteString(u.Hostname)
	if u.Port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.Port))
	}
	b.WriteString(u.Path)
	if ctx := ComposeContext(u.Context); ctx != "" {
		b.WriteByte('?')
		b.WriteString(ctx)
	}
	return b.String(), nil
}

// ParseContext splits an SMB URL context string into key/value pairs. The
// pairs may be separated by ';' or '&'; keys and values are separated by
// the first '='. Returns nil if context, once trimmed, is empty.
func ParseContext(context string) []ContextPair {
	context = strings.Trim(context, " ?&;")
	if context == "" {
		return nil
	}
	var pairs []ContextPair
	for _, group := range strings.Split(context, ";") {
		for _, pair := range strings.Split(group, "&") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			k, v, found := strings.Cut(pair, "=")
			if !found {
				continue
			}
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			pairs = append(pairs, ContextPair{Key: k, Value: v})
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	return pairs
}

// ComposeContext joins context pairs back into a "key=value;key=value"
// string with no leading '?'. Returns "" for an empty list.
func ComposeContext(pairs []ContextPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Key + "=" + p.Value
	}
	return strings.Join(parts, ";")
}

// partition splits s at the first occurrence of sep, returning ok=false if
// sep is not present (mirroring Python's str.partition failure mode, used
// here only where the original treats a missing separator as an error).
func partition(s, sep string) (before, after string, ok bool) {
	before, after, ok = strings.Cut(s, sep)
	return before, after, ok
}

// partitionOptional splits s at the first occurrence of sep. If sep is
// absent, before is all of s and found is false.
func partitionOptional(s, sep string) (before, after string, found bool) {
	before, after, found = strings.Cut(s, sep)
	return before, after, found
}

// rpartitionOptional splits s at the last occurrence of sep. If sep is
// absent, (first, "") is ("", s) — matching Python's rpartition, which
// puts the whole unsplit string in the *last* element when the separator
// isn't found.
func rpartitionOptional(s, sep string) (before, after string) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return "", s
	}
	return s[:idx], s[idx+len(sep):]
}

// partitionColon splits on the first ':' only, with no-colon meaning the
// whole string is "before".
func partitionColon(s string) (before, after string) {
	before, after, found := strings.Cut(s, ":")
	if !found {
		return s, ""
	}
	return before, after
}
