package docscraper

import (
	"net/url"
	"strings"
)

// Scope bounds a crawl to a single documentation set. It is derived once
// from the entry URL and never mutated. A link belongs to the scope when it
// shares the scope's host and its path sits under the path prefix.
type Scope struct {
	Scheme     string
	Host       string
	PathPrefix string
}

// NewScope derives a Scope from an absolute entry URL.
//
// The path prefix is the entry path's containing directory when the entry
// looks like a leaf page (e.g. /docs/intro yields /docs), or the entry path
// itself when it already looks like a section root (a single segment, or a
// path ending in a slash). Returns an EINVALID error when the entry URL is
// unparsable or missing a scheme or host.
func NewScope(entryURL string) (*Scope, error) {
	u, err := url.Parse(entryURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid entry URL %q: %v", entryURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "entry URL %q must be absolute with a scheme and host", entryURL)
	}

	return &Scope{
		Scheme:     u.Scheme,
		Host:       u.Host,
		PathPrefix: prefixFromPath(u.Path),
	}, nil
}

// prefixFromPath truncates an entry path to its section root.
func prefixFromPath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	// A trailing slash marks the path as a section root already.
	if strings.HasSuffix(p, "/") {
		return strings.TrimSuffix(p, "/")
	}
	i := strings.LastIndex(p, "/")
	if i == 0 {
		// Single segment, e.g. /docs: the segment is the section root.
		return p
	}
	return p[:i]
}

// BaseURL returns the scope rendered as an absolute URL.
func (s *Scope) BaseURL() string {
	if s.PathPrefix == "/" {
		return s.Scheme + "://" + s.Host + "/"
	}
	return s.Scheme + "://" + s.Host + s.PathPrefix
}

// Contains reports whether rawURL belongs to this documentation set: same
// host, and a path equal to or nested under the path prefix. Prefix
// matching respects path boundaries, so a /docs scope does not swallow
// /documentation.
func (s *Scope) Contains(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Host != s.Host {
		return false
	}
	if s.PathPrefix == "/" {
		return true
	}
	path := u.Path
	return path == s.PathPrefix || strings.HasPrefix(path, s.PathPrefix+"/")
}

// NormalizeURL canonicalizes a URL for deduplication: the fragment and any
// trailing slash are stripped. URLs that fail to parse are returned as-is.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}
