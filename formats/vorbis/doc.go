// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio through
// github.com/jfreymuth/oggvorbis.
//
// Samples come out interleaved in the stream's own channel layout and rate;
// reads are trimmed to whole frames.
package vorbis
