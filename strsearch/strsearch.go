package strsearch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepviz/step"
)

// Options configures Horspool.
type Options struct {
	// Overlapping applies the table shift after a match instead of m.
	Overlapping bool
}

// Option configures Options.
type Option func(*Options)

// WithOverlapping makes Horspool report overlapping occurrences.
func WithOverlapping() Option {
	return func(o *Options) {
		o.Overlapping = true
	}
}

// BruteForce returns the rune offsets of every occurrence of pattern in text.
func BruteForce(ctx context.Context, tr *step.Tracer, text, pattern string) ([]int, error) {
	s := newScanner(ctx, tr, text, pattern)
	n, m := len(s.text), len(s.pat)
	if m == 0 || m > n {
		return s.finish()
	}

	for off := 0; off <= n-m; off++ {
		s.offset = off
		full, err := s.compare(func(j int) int { return j + 1 }, 0)
		if err != nil {
			return s.matches, err
		}
		if full {
			if err = s.found(); err != nil {
				return s.matches, err
			}
		}
		if off < n-m {
			if err = s.shift(1); err != nil {
				return s.matches, err
			}
		}
	}

	return s.finish()
}

// Horspool returns the rune offsets of occurrences of pattern in text using
// the bad-character shift table.
func Horspool(ctx context.Context, tr *step.Tracer, text, pattern string, opts ...Option) ([]int, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := newScanner(ctx, tr, text, pattern)
	n, m := len(s.text), len(s.pat)
	if m == 0 || m > n {
		return s.finish()
	}

	table := ShiftTable(pattern)
	for off := 0; off <= n-m; {
		s.offset = off
		full, err := s.compare(func(j int) int { return j - 1 }, m-1)
		if err != nil {
			return s.matches, err
		}
		shift := m
		if d, ok := table[s.text[off+m-1]]; ok {
			shift = d
		}
		if full {
			if err = s.found(); err != nil {
				return s.matches, err
			}
			if !cfg.Overlapping {
				shift = m
			}
		}
		if off+shift > n-m {
			break
		}
		if err = s.shift(shift); err != nil {
			return s.matches, err
		}
		off += shift
	}

	return s.finish()
}

// ShiftTable returns the bad-character table of pattern: for each rune in
// pattern[0..m−2], the distance from its last occurrence to the final
// position. Runes absent from the table shift by m.
func ShiftTable(pattern string) map[rune]int {
	pat := []rune(pattern)
	m := len(pat)
	table := make(map[rune]int, m)
	for i := 0; i < m-1; i++ {
		table[pat[i]] = m - 1 - i
	}

	return table
}

// scanner carries the observable state of one search.
type scanner struct {
	ctx      context.Context
	tr       *step.Tracer
	text     []rune
	pat      []rune
	offset   int
	ti, pj   int
	lastStep int
	matches  []int
}

func newScanner(ctx context.Context, tr *step.Tracer, text, pattern string) *scanner {
	return &scanner{
		ctx:     ctx,
		tr:      tr,
		text:    []rune(text),
		pat:     []rune(pattern),
		ti:      step.None,
		pj:      step.None,
		matches: []int{},
	}
}

// compare walks pattern positions from j0 using next until it leaves the
// pattern (full match) or a rune differs.
func (s *scanner) compare(next func(int) int, j0 int) (bool, error) {
	for j := j0; j >= 0 && j < len(s.pat); j = next(j) {
		s.pj, s.ti = j, s.offset+j
		if s.text[s.ti] != s.pat[j] {
			return false, s.emit(step.KindMismatch, "text[%d]=%q ≠ pattern[%d]=%q", s.ti, s.text[s.ti], j, s.pat[j])
		}
		if err := s.emit(step.KindMatch, "text[%d]=%q = pattern[%d]", s.ti, s.text[s.ti], j); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (s *scanner) found() error {
	s.matches = append(s.matches, s.offset)
	return s.emit(step.KindFound, "match at %d", s.offset)
}

func (s *scanner) shift(d int) error {
	s.lastStep = d
	err := s.emit(step.KindShift, "by %d to %d", d, s.offset+d)
	s.lastStep = 0

	return err
}

func (s *scanner) emit(kind step.Kind, format string, args ...any) error {
	if s.tr == nil {
		return s.tr.Emit(s.ctx, step.Event{})
	}

	return s.tr.Emit(s.ctx, step.Event{
		Kind: kind,
		Note: fmt.Sprintf(format, args...),
		Text: s.state(),
	})
}

func (s *scanner) finish() ([]int, error) {
	s.ti, s.pj = step.None, step.None
	if s.tr == nil {
		return s.matches, s.tr.Finish(s.ctx, step.Event{})
	}

	return s.matches, s.tr.Finish(s.ctx, step.Event{
		Note: fmt.Sprintf("%d matches", len(s.matches)),
		Text: s.state(),
	})
}

func (s *scanner) state() *step.TextState {
	return &step.TextState{
		Text:         string(s.text),
		Pattern:      string(s.pat),
		Offset:       s.offset,
		TextIndex:    s.ti,
		PatternIndex: s.pj,
		Shift:        s.lastStep,
		Matches:      s.matches,
	}
}
