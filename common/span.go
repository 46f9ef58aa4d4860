package common

import (
	"fmt"
	"sync/atomic"

	"fortio.org/safecast"
)

var globalSpanID uint64

func nextSpanID() uint64 {
	return atomic.AddUint64(&globalSpanID, 1)
}

// Span represents a range in a source file.
type Span struct {
	ID                     uint64
	LineStart, LineEnd     uint32
	ColumnStart, ColumnEnd uint32
	Source                 string // "" == unknown
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d:%d (%s)", s.LineStart, s.ColumnStart, s.LineEnd, s.ColumnEnd, s.Source)
}

func spanCreate(lineStart, lineEnd, columnStart, columnEnd uint32, src string) Span {
	return Span{
		ID:          nextSpanID(),
		LineStart:   lineStart,
		LineEnd:     lineEnd,
		ColumnStart: columnStart,
		ColumnEnd:   columnEnd,
		Source:      src,
	}
}

func SpanDefault() Span {
	return spanCreate(0, 0, 0, 0, "")
}

func SpanNew(lineStart, lineEnd, columnStart, columnEnd uint32) Span {
	return spanCreate(lineStart, lineEnd, columnStart, columnEnd, "")
}

func SpanSrc(src string) Span {
	return spanCreate(0, 0, 0, 0, src)
}

// SpanAt builds a single-position span from plain ints, as handed over by
// earlier pipeline stages.
func SpanAt(line, column int, src string) Span {
	l, err := safecast.Conv[uint32](line)
	if err != nil {
		l = 0
	}
	c, err := safecast.Conv[uint32](column)
	if err != nil {
		c = 0
	}
	return spanCreate(l, l, c, c, src)
}

// SpanFrom joins the outer bounds of two spans.
func SpanFrom(start, end Span) Span {
	return spanCreate(
		start.LineStart,
		end.LineEnd,
		start.ColumnStart,
		end.ColumnEnd,
		start.Source,
	)
}
