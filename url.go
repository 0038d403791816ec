package siteaudit

import (
	"net/url"
	"path"
	"strings"
)

// staticExtensions lists file extensions that mark a URL as a static
// resource. Such URLs are recorded during a crawl but never fetched.
var staticExtensions = map[string]bool{
	// images
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	// fonts
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	// stylesheets and scripts
	".css": true, ".js": true, ".mjs": true,
	// documents
	".pdf": true, ".doc": true, ".docx": true, ".xls": true,
	".xlsx": true, ".ppt": true, ".pptx": true, ".txt": true,
	// archives and media
	".zip": true, ".tar": true, ".gz": true, ".rar": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".webm": true,
}

// skipSchemes lists href prefixes that are never normalized or visited.
var skipSchemes = []string{"javascript:", "mailto:", "tel:", "data:"}

// OriginOf returns the scheme://host origin of a URL, which serves as the
// internal/external boundary for a crawl.
func OriginOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q has no scheme or host", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

// SkipLink reports whether an href should be dropped before classification.
// Fragment-only anchors and non-HTTP schemes (javascript:, mailto:, tel:,
// data:) are never normalized or visited.
func SkipLink(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return true
	}
	lower := strings.ToLower(href)
	for _, scheme := range skipSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

// IsInternal reports whether a link belongs to the audited site.
//
// This is deliberately a prefix test, not full origin parsing: a link is
// internal when it is root-relative or when it starts with the base origin
// string. Two different hosts sharing a string prefix would misclassify;
// the behavior is preserved from the original auditor.
func IsInternal(link, origin string) bool {
	return strings.HasPrefix(link, "/") || strings.HasPrefix(link, origin)
}

// Normalize converts a link found on pageURL into absolute form relative to
// the crawl origin. Root-relative links resolve against the origin,
// schemeless links resolve against the current page, and absolute links pass
// through unchanged. Normalize is idempotent for already-absolute URLs.
func Normalize(link, pageURL, origin string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", Errorf(EINVALID, "empty link")
	}

	if strings.HasPrefix(link, "//") {
		// Protocol-relative: borrow the origin's scheme.
		o, err := url.Parse(origin)
		if err != nil {
			return "", Errorf(EINVALID, "invalid origin %q: %v", origin, err)
		}
		return o.Scheme + ":" + link, nil
	}

	if strings.HasPrefix(link, "/") {
		return origin + link, nil
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", Errorf(EINVALID, "invalid link %q: %v", link, err)
	}
	if u.Scheme != "" {
		return link, nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid page URL %q: %v", pageURL, err)
	}
	return base.ResolveReference(u).String(), nil
}

// ShouldCrawl reports whether a URL is crawlable. URLs whose path ends with
// a static-file extension are recorded as static resources and excluded
// from traversal.
func ShouldCrawl(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	return !staticExtensions[ext]
}
