// Package extract implements the line filter that pulls runnable SCT
// command lines out of tutorial text files.
//
// A line qualifies when, after left-stripping whitespace and removing a
// leading comment marker, it starts with the command prefix, has at least
// MinTokens space-separated tokens, contains no <...> placeholder markers,
// and does not start with an excluded sub-command.
//
// Files are scanned one at a time, strictly in the order given, and matched
// lines keep their encounter order. The first unreadable file aborts the
// whole scan; partial results are never returned.
package extract
