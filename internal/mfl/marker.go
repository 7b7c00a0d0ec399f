package mfl

import "regexp"

// MFL embeds the session cookie value in an HTML-ish login body as
// MFL_USER_ID="<value>">OK. There is no structured field for it.
var userIDMarker = regexp.MustCompile(`MFL_USER_ID="([^"]*)">OK`)

// extractUserID scans the whole login body for the first MFL_USER_ID marker and returns
// its value. The second return value reports whether the marker was present at all.
func extractUserID(body string) (string, bool) {
	m := userIDMarker.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return m[1], true
}
