// Package segment splits rewritten text into sentences, classifies them as
// simple or complex, and converts each one either by glyph mapping or by
// asking a restructurer.
package segment
