package dropkit

import "strings"

// User agent signatures of browsers whose drag events misreport MIME
// metadata. IE reports "MSIE " (IE 10 and older) or "Trident/" (IE 11);
// pre-Chromium Edge reports "Edge/".
const (
	uaMSIE    = "MSIE "
	uaTrident = "Trident/"
	uaEdge    = "Edge/"
)

// IsLegacyIEOrEdge reports whether the user agent string identifies
// Internet Explorer or legacy (pre-Chromium) Edge. Callers use it to
// decide whether dragover MIME metadata can be trusted.
func IsLegacyIEOrEdge(userAgent string) bool {
	return IsIE(userAgent) || IsLegacyEdge(userAgent)
}

// IsIE reports whether the user agent string identifies Internet Explorer.
func IsIE(userAgent string) bool {
	return strings.Contains(userAgent, uaMSIE) || strings.Contains(userAgent, uaTrident)
}

// IsLegacyEdge reports whether the user agent string identifies
// pre-Chromium Edge.
func IsLegacyEdge(userAgent string) bool {
	return strings.Contains(userAgent, uaEdge)
}
