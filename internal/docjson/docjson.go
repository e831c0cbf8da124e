// Package docjson provides access to structured documents of unknown shape.
// Documents are arbitrary JSON produced by an external extraction service;
// no schema is guaranteed, so every read goes through presence semantics
// that distinguish real content from empty or null-ish placeholder values.
package docjson

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Parse validates raw JSON bytes and returns the parsed document root.
// The document must be a JSON object; anything else is rejected.
func Parse(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, &ParseError{Message: "input is not valid JSON"}
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return gjson.Result{}, &ParseError{Message: "document root must be a JSON object"}
	}

	return doc, nil
}

// Present reports whether a JSON value carries real information.
//
// A value is absent when it is null or missing, a string that is empty
// after trimming or spells the word "null" in any case, an empty array or
// object, or an array/object whose elements are all themselves absent.
// Numbers and booleans are always present. The check is pure and never
// panics; recursion depth is bounded by the nesting of the document.
func Present(v gjson.Result) bool {
	if !v.Exists() {
		return false
	}

	switch v.Type {
	case gjson.Null:
		return false
	case gjson.String:
		trimmed := strings.TrimSpace(v.Str)
		if trimmed == "" {
			return false
		}
		// Upstream extraction services sometimes stringify missing values
		// as the literal word "null".
		return !strings.EqualFold(trimmed, "null")
	case gjson.JSON:
		found := false
		v.ForEach(func(_, element gjson.Result) bool {
			if Present(element) {
				found = true
				return false
			}
			return true
		})
		return found
	default:
		// Number, True, False
		return true
	}
}

// FirstPresent returns the first candidate value that is present,
// checked in the order supplied. Ordering is caller-controlled and
// encodes a priority among schema synonyms.
func FirstPresent(candidates ...gjson.Result) (gjson.Result, bool) {
	for _, c := range candidates {
		if Present(c) {
			return c, true
		}
	}
	return gjson.Result{}, false
}

// Resolve reads each key off obj in order and returns the first present
// value rendered as a string. An empty return means no candidate
// qualified; present strings are never empty, so "" is an unambiguous
// absence sentinel.
func Resolve(obj gjson.Result, keys ...string) string {
	for _, key := range keys {
		v := obj.Get(key)
		if Present(v) {
			return strings.TrimSpace(v.String())
		}
	}
	return ""
}

// PresentStrings returns the present elements of an array value rendered
// as trimmed strings. Non-array values yield nil; there is no coercion of
// scalars into single-element lists.
func PresentStrings(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}

	var out []string
	v.ForEach(func(_, element gjson.Result) bool {
		if Present(element) {
			out = append(out, strings.TrimSpace(element.String()))
		}
		return true
	})
	return out
}
