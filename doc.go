// Package urlcodec implements the www-form-urlencoded encoding scheme,
// also misleadingly known as URL encoding.
//
// This package provides the byte-level transform described in chapter
// 17.13.4 of the HTML 4.01 specification: safe characters pass through
// unchanged, space becomes '+', and every other byte is escaped as '%'
// followed by two uppercase hexadecimal digits. Unlike net/url it
// operates on raw bytes, accepts a caller-supplied safe-character set,
// and layers charset-aware string conversions on top of the byte
// transform.
package urlcodec
