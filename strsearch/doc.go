// Package strsearch finds every occurrence of a pattern in a text, one
// character comparison per event.
//
// Text and pattern are compared as runes, and reported offsets are rune
// offsets. An empty pattern, or one longer than the text, matches nothing
// and emits only the done event.
//
//   - BruteForce tries offsets 0..n−m left to right and abandons an offset
//     at its first mismatch.
//   - Horspool compares right to left and shifts by the bad-character table
//     entry of the text rune under the last pattern position (m when the rune
//     is not in pattern[0..m−2]). After a full match it advances by m, so
//     overlapping occurrences are skipped; WithOverlapping applies the table
//     shift after matches too and then reports what BruteForce reports.
//
// Events: match, mismatch (one per compared rune), found, shift, done.
package strsearch
