package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/pixelforge/studio-api/internal/model"
)

// Field size limits. Short fields cover names and titles, long fields cover
// descriptions, and body covers full article content.
const (
	shortMax = 255
	longMax  = 4095
	bodyMax  = 32767
	urlMax   = 2048
	phoneMax = 20
	tagMax   = 31
	labelMax = 63
	tagsMax  = 20
	limitMax = 20
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	idPattern   = regexp.MustCompile(`^[a-z_]+:[A-Za-z0-9]+$`)
	tagPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// requireString fetches a mandatory non-empty string within max bytes.
func requireString(in Input, errs *Errors, key string, max int) string {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		errs.Add(key, "is required")
		return ""
	}
	s, ok := asString(v)
	if !ok {
		errs.Add(key, "must be a string")
		return ""
	}
	if s == "" {
		errs.Add(key, "must not be empty")
		return ""
	}
	if len(s) > max {
		errs.Add(key, fmt.Sprintf("must be at most %d characters", max))
		return ""
	}
	return s
}

// optionalString fetches an optional string within max bytes; nil when the
// key is absent.
func optionalString(in Input, errs *Errors, key string, max int) *string {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		return nil
	}
	s, ok := asString(v)
	if !ok {
		errs.Add(key, "must be a string")
		return nil
	}
	if len(s) > max {
		errs.Add(key, fmt.Sprintf("must be at most %d characters", max))
		return nil
	}
	return &s
}

// requireID fetches a mandatory record id and checks its table prefix.
func requireID(in Input, errs *Errors, key, table string) string {
	s := requireString(in, errs, key, shortMax)
	if s == "" {
		return ""
	}
	if !idPattern.MatchString(s) || !strings.HasPrefix(s, table+":") {
		errs.Add(key, fmt.Sprintf("must be a %s id", table))
		return ""
	}
	return s
}

// nullableID fetches a mandatory-but-nullable record id: the key must be
// present, and an explicit null resolves to nil.
func nullableID(in Input, errs *Errors, key, table string) (*string, bool) {
	v, ok := in.lookup(key)
	if !ok {
		errs.Add(key, "is required")
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	s, ok := asString(v)
	if !ok || !idPattern.MatchString(s) || !strings.HasPrefix(s, table+":") {
		errs.Add(key, fmt.Sprintf("must be a %s id or null", table))
		return nil, false
	}
	return &s, true
}

// idList fetches a list of record ids sharing one table prefix.
func idList(in Input, errs *Errors, key, table string, required bool) []string {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		if required {
			errs.Add(key, "is required")
		}
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		errs.Add(key, "must be an array")
		return nil
	}
	if required && len(items) == 0 {
		errs.Add(key, "must not be empty")
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := asString(item)
		if !ok || !idPattern.MatchString(s) || !strings.HasPrefix(s, table+":") {
			errs.Add(fmt.Sprintf("%s[%d]", key, i), fmt.Sprintf("must be a %s id", table))
			continue
		}
		out = append(out, s)
	}
	return out
}

// requireSlug fetches a mandatory URL slug: lowercase alphanumeric runs
// separated by single hyphens.
func requireSlug(in Input, errs *Errors, key string) string {
	s := requireString(in, errs, key, shortMax)
	if s == "" {
		return ""
	}
	if !slugPattern.MatchString(s) {
		errs.Add(key, "must be lowercase letters, digits, and single hyphens")
		return ""
	}
	return s
}

// tagList fetches an optional tag array; nil when absent so patches can
// distinguish "untouched" from "cleared". Tags are lowercased on intake.
func tagList(in Input, errs *Errors, key string) []string {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		errs.Add(key, "must be an array")
		return nil
	}
	if len(items) > tagsMax {
		errs.Add(key, fmt.Sprintf("must have at most %d tags", tagsMax))
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := asString(item)
		if ok {
			s = strings.ToLower(s)
		}
		if !ok || s == "" || len(s) > tagMax || !tagPattern.MatchString(s) {
			errs.Add(fmt.Sprintf("%s[%d]", key, i), "must be a tag of letters, digits, and hyphens")
			continue
		}
		out = append(out, s)
	}
	return out
}

// linkList fetches an optional array of {label, url} objects.
func linkList(in Input, errs *Errors, key string) []model.Link {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		errs.Add(key, "must be an array")
		return nil
	}
	out := make([]model.Link, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			errs.Add(fmt.Sprintf("%s[%d]", key, i), "must be an object")
			continue
		}
		label, lok := asString(obj["label"])
		if !lok || label == "" || len(label) > labelMax {
			errs.Add(fmt.Sprintf("%s[%d].label", key, i), "must be a short label")
			continue
		}
		rawURL, uok := asString(obj["url"])
		if !uok || !isHTTPURL(rawURL) {
			errs.Add(fmt.Sprintf("%s[%d].url", key, i), "must be an http(s) URL")
			continue
		}
		out = append(out, model.Link{Label: label, URL: rawURL})
	}
	return out
}

func isHTTPURL(s string) bool {
	if s == "" || len(s) > urlMax {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// requireURL fetches a mandatory http(s) URL.
func requireURL(in Input, errs *Errors, key string) string {
	s := requireString(in, errs, key, urlMax)
	if s == "" {
		return ""
	}
	if !isHTTPURL(s) {
		errs.Add(key, "must be an http(s) URL")
		return ""
	}
	return s
}

// mediaKeyValid reports whether s is a namespace/owner/asset key: exactly
// three non-empty slash-separated segments.
func mediaKeyValid(s string) bool {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// requireMediaKey fetches a mandatory asset key.
func requireMediaKey(in Input, errs *Errors, key string) string {
	s := requireString(in, errs, key, shortMax)
	if s == "" {
		return ""
	}
	if !mediaKeyValid(s) {
		errs.Add(key, "must be a namespace/owner/name key")
		return ""
	}
	return s
}

// optionalMediaKey fetches an optional asset key; nil when absent.
func optionalMediaKey(in Input, errs *Errors, key string) *string {
	s := optionalString(in, errs, key, shortMax)
	if s == nil {
		return nil
	}
	if !mediaKeyValid(*s) {
		errs.Add(key, "must be a namespace/owner/name key")
		return nil
	}
	return s
}

// optionalPhone fetches an optional phone number; nil when absent.
func optionalPhone(in Input, errs *Errors, key string) *string {
	s := optionalString(in, errs, key, phoneMax)
	if s == nil {
		return nil
	}
	for _, r := range *s {
		if (r < '0' || r > '9') && r != '+' && r != '-' && r != ' ' && r != '(' && r != ')' {
			errs.Add(key, "must be a phone number")
			return nil
		}
	}
	return s
}

// pageParam parses the mandatory page query parameter; pages start at 1.
func pageParam(in Input, errs *Errors) int {
	return intParam(in, errs, "page", 1, 0)
}

// limitParam parses the mandatory limit query parameter, capped so one page
// can never drag the whole table over the wire.
func limitParam(in Input, errs *Errors) int {
	return intParam(in, errs, "limit", 1, limitMax)
}

// intParam parses a string-typed integer parameter with bounds; max 0 means
// unbounded above.
func intParam(in Input, errs *Errors, key string, min, max int) int {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		errs.Add(key, "is required")
		return 0
	}
	s, ok := asString(v)
	if !ok {
		errs.Add(key, "must be a number string")
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs.Add(key, "must be a number string")
		return 0
	}
	if n < min {
		errs.Add(key, fmt.Sprintf("must be at least %d", min))
		return 0
	}
	if max > 0 && n > max {
		errs.Add(key, fmt.Sprintf("must be at most %d", max))
		return 0
	}
	return n
}

// requireEnum fetches a mandatory string and checks membership.
func requireEnum(in Input, errs *Errors, key string, valid func(string) bool) string {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		errs.Add(key, "is required")
		return ""
	}
	s, ok := asString(v)
	if !ok || !valid(s) {
		errs.Add(key, "is not a recognized value")
		return ""
	}
	return s
}

// requireBool fetches a mandatory boolean.
func requireBool(in Input, errs *Errors, key string) bool {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		errs.Add(key, "is required")
		return false
	}
	b, ok := v.(bool)
	if !ok {
		errs.Add(key, "must be a boolean")
		return false
	}
	return b
}
