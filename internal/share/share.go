// Package share encodes a verb into a shareable URL query and back.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is the query parameter carrying the verb. ShortParam is accepted on decode.
const (
	Param      = "verb"
	ShortParam = "v"
)

// componentEscaper turns url.QueryEscape output into encodeURIComponent
// output: spaces are %20 and !'()* stay literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Escape percent-encodes s the way encodeURIComponent does.
func Escape(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// Unescape reverses Escape the way decodeURIComponent does: "+" stays a
// plus sign.
func Unescape(s string) (string, error) {
	return url.PathUnescape(s)
}

// Encode returns "verb=<escaped verb>".
func Encode(verb string) string {
	return Param + "=" + Escape(verb)
}

// Query returns Encode prefixed with "?".
func Query(verb string) string {
	return "?" + Encode(verb)
}

// Link appends the verb query to base, replacing any existing query.
func Link(base, verb string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base url: %w", err)
	}
	u.RawQuery = Encode(verb)
	u.Fragment = ""
	return u.String(), nil
}

// Decode reads the verb from a raw query string. A leading "?" is
// allowed; "verb" wins over "v". Empty values and pairs that fail to
// unescape count as absent. The first occurrence of a key is used.
func Decode(rawQuery string) (string, bool) {
	values := make(map[string]string)
	for _, pair := range strings.Split(strings.TrimPrefix(rawQuery, "?"), "&") {
		k, v, _ := strings.Cut(pair, "=")
		key, err := Unescape(k)
		if err != nil {
			continue
		}
		if _, seen := values[key]; seen {
			continue
		}
		val, err := Unescape(v)
		if err != nil {
			continue
		}
		values[key] = val
	}

	for _, key := range []string{Param, ShortParam} {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v, true
		}
	}
	return "", false
}

// DecodeURL reads the verb from a full URL, or from a bare query string.
func DecodeURL(raw string) (string, bool) {
	if strings.HasPrefix(raw, "?") || !strings.Contains(raw, "?") && !strings.Contains(raw, "://") {
		return Decode(raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	return Decode(u.RawQuery)
}
