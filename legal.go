// Package zakc provides generic container primitives: a separate-chaining
// hash map, a doubly linked list, and a dynamic array.
//
// The containers live in the packages under pkg; this root package only holds
// module-wide metadata.
package zakc

import _ "embed"

//go:embed LICENSE
var License string

// LegalText returns legal text to be included in human-readable output using zakc.
func LegalText() string {
	return `
================================================================================
zakc - generic container primitives
================================================================================
` + License + "\n" + ""
}
