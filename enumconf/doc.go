// Package enumconf reads and writes the "enum" config directive:
//
//	enum <key> <value>:<label> <value>:<label> ...
//
// A key of the form "major:minor" (two non-negative integers) addresses the
// indexed table of an enum.Registry; any other key names a named list. The
// label is everything after the first colon, so "3:a:b" is value 3 with
// label "a:b". Words may be quoted with ' or " to carry whitespace.
//
// Parsing is lenient: the first word that is not "integer:label" ends the
// directive and everything after it is ignored.
//
// Emit wraps output so that each line stays within a width budget
// (DefaultLineWidth), repeating the "enum <key>" prefix on every line.
package enumconf
