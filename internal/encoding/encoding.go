//
// Tencent is pleased to support the open source community by making trpc-ragkit-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ragkit-go is licensed under the Apache License Version 2.0.
//
//

// Package encoding normalizes document text to valid UTF-8 before
// parsing. Technical documentation in this pipeline is mostly Russian
// or English, so legacy Cyrillic code pages are tried first.
package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding identifies a detected text encoding.
type Encoding string

// Known encodings.
const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1251 Encoding = "windows-1251"
	EncodingKOI8R       Encoding = "koi8-r"
	EncodingLatin1      Encoding = "iso-8859-1"
	EncodingUnknown     Encoding = "unknown"
)

// Info describes the outcome of encoding detection.
type Info struct {
	// Encoding is the detected source encoding.
	Encoding Encoding

	// Valid reports whether the normalized text is valid UTF-8.
	Valid bool
}

// legacy decoders tried in order when the input is not valid UTF-8.
var legacy = []struct {
	name Encoding
	enc  encoding.Encoding
}{
	{EncodingWindows1251, charmap.Windows1251},
	{EncodingKOI8R, charmap.KOI8R},
	{EncodingLatin1, charmap.ISO8859_1},
}

// Normalize converts text to valid UTF-8, decoding from a legacy code
// page when necessary. It never fails: undecodable input is returned
// with invalid sequences replaced by the Unicode replacement rune.
func Normalize(text string) (string, Info) {
	if utf8.ValidString(text) {
		return text, Info{Encoding: EncodingUTF8, Valid: true}
	}
	for _, l := range legacy {
		decoded, _, err := transform.String(l.enc.NewDecoder(), text)
		if err == nil && utf8.ValidString(decoded) {
			return decoded, Info{Encoding: l.name, Valid: true}
		}
	}
	return string([]rune(text)), Info{Encoding: EncodingUnknown, Valid: false}
}

// RuneCount returns the number of runes in text.
func RuneCount(text string) int {
	return utf8.RuneCountInString(text)
}
