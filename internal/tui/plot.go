// SPDX-License-Identifier: EPL-2.0

package tui

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

const (
	gutterWidth = 7
	minRows     = 3

	// Rows used by the title, axis, tick and axis name lines.
	chromeRows = 4
)

type cell uint8

const (
	cellEmpty cell = iota
	cellZero
	cellTrace
)

// Plot is a terminal renderer for the engine. It keeps the latest snapshot
// and draws it on demand with a fixed amplitude range of [-1, 1].
type Plot struct {
	styles Styles

	mu      sync.Mutex
	times   []float64
	samples []float64
	notify  func()
}

func NewPlot(styles Styles) *Plot {
	return &Plot{styles: styles}
}

// SetNotify registers fn to run after each new snapshot. Plot is called
// while the engine holds its lock, so fn must not block or call back into
// the engine.
func (p *Plot) SetNotify(fn func()) {
	p.mu.Lock()
	p.notify = fn
	p.mu.Unlock()
}

// Plot replaces the snapshot.
func (p *Plot) Plot(times, samples []float64) {
	p.mu.Lock()
	p.times, p.samples = times, samples
	notify := p.notify
	p.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Snapshot returns the series last passed to Plot.
func (p *Plot) Snapshot() (times, samples []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.times, p.samples
}

// Render draws the snapshot into a width x height block of text.
func (p *Plot) Render(width, height int) string {
	times, samples := p.Snapshot()

	cols := max(width-gutterWidth, 1)
	rows := max(height-chromeRows, minRows)

	grid := newGrid(rows, cols)
	zeroRow := ampToRow(0, rows)
	for c := range cols {
		grid[zeroRow][c] = cellZero
	}

	n := min(len(times), len(samples))
	if n > 0 {
		drawTrace(grid, times[:n], samples[:n])
	}

	var out strings.Builder

	out.WriteString(p.styles.Label.Render("Amplitude"))
	out.WriteByte('\n')

	for r := range rows {
		out.WriteString(p.styles.Label.Render(rowLabel(r, rows, zeroRow)))
		out.WriteString(p.styles.Axis.Render(axisGlyph(r, rows, zeroRow)))
		p.writeRow(&out, grid[r])
		out.WriteByte('\n')
	}

	out.WriteString(p.styles.Axis.Render(strings.Repeat(" ", gutterWidth-1) + "└" + strings.Repeat("─", cols)))
	out.WriteByte('\n')

	if n > 0 {
		out.WriteString(p.styles.Label.Render(tickLine(times[0], times[n-1], cols)))
	}
	out.WriteByte('\n')

	out.WriteString(p.styles.Label.Render(centre("Time (s)", gutterWidth+cols)))

	return out.String()
}

// writeRow emits runs of equal cells with one style call per run.
func (p *Plot) writeRow(out *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i] == row[start] {
			continue
		}
		out.WriteString(p.paint(row[start], i-start))
		start = i
	}
}

func (p *Plot) paint(c cell, n int) string {
	switch c {
	case cellTrace:
		return p.styles.Trace.Render(strings.Repeat("│", n))
	case cellZero:
		return p.styles.Zero.Render(strings.Repeat("─", n))
	default:
		return strings.Repeat(" ", n)
	}
}

func newGrid(rows, cols int) [][]cell {
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}

	return grid
}

// column is the amplitude extent drawn in one terminal column.
type column struct {
	has         bool
	lo, hi      float64
	first, last float64
}

// drawTrace buckets the points into columns by time and draws each column
// as a vertical run from its minimum to its maximum, joined to the previous
// column so the trace stays connected.
func drawTrace(grid [][]cell, times, samples []float64) {
	rows, cols := len(grid), len(grid[0])
	buckets := make([]column, cols)

	tMin, tMax := times[0], times[len(times)-1]
	span := tMax - tMin

	for i, t := range times {
		c := 0
		if span > 0 && cols > 1 {
			c = int(math.Round((t - tMin) / span * float64(cols-1)))
			c = min(max(c, 0), cols-1)
		}

		v := samples[i]
		b := &buckets[c]
		if !b.has {
			*b = column{has: true, lo: v, hi: v, first: v, last: v}
			continue
		}
		b.lo = math.Min(b.lo, v)
		b.hi = math.Max(b.hi, v)
		b.last = v
	}

	fillGaps(buckets)

	prev := math.NaN()
	for c, b := range buckets {
		if !b.has {
			prev = math.NaN()
			continue
		}

		lo, hi := b.lo, b.hi
		if !math.IsNaN(prev) {
			lo, hi = math.Min(lo, prev), math.Max(hi, prev)
		}
		for r := ampToRow(hi, rows); r <= ampToRow(lo, rows); r++ {
			grid[r][c] = cellTrace
		}
		prev = b.last
	}
}

// fillGaps interpolates empty columns between two filled ones, which
// happens when there are fewer points than columns.
func fillGaps(buckets []column) {
	prev := -1
	for c := range buckets {
		if !buckets[c].has {
			continue
		}
		if prev >= 0 && c-prev > 1 {
			from, to := buckets[prev].last, buckets[c].first
			for g := prev + 1; g < c; g++ {
				v := from + (to-from)*float64(g-prev)/float64(c-prev)
				buckets[g] = column{has: true, lo: v, hi: v, first: v, last: v}
			}
		}
		prev = c
	}
}

// ampToRow maps an amplitude in [-1, 1] to a row, top row first. Values
// outside the range clip to the edge rows.
func ampToRow(amp float64, height int) int {
	if height <= 1 || math.IsNaN(amp) {
		return max(height-1, 0) / 2
	}

	amp = math.Min(math.Max((amp+1)/2, 0), 1)
	row := int(math.Round((1 - amp) * float64(height-1)))

	return min(max(row, 0), height-1)
}

func rowLabel(r, rows, zeroRow int) string {
	switch r {
	case 0:
		return fmt.Sprintf("%5.1f ", 1.0)
	case zeroRow:
		return fmt.Sprintf("%5.1f ", 0.0)
	case rows - 1:
		return fmt.Sprintf("%5.1f ", -1.0)
	default:
		return strings.Repeat(" ", gutterWidth-1)
	}
}

func axisGlyph(r, rows, zeroRow int) string {
	if r == 0 || r == zeroRow || r == rows-1 {
		return "┤"
	}

	return "│"
}

// tickLine labels the start, middle and end of the time axis. Labels that
// would overlap are left out.
func tickLine(tMin, tMax float64, cols int) string {
	line := []rune(strings.Repeat(" ", gutterWidth+cols))
	taken := make([]bool, len(line))

	place := func(label string, at int) {
		r := []rune(label)
		at = min(max(at, 0), len(line)-len(r))
		if at < 0 {
			return
		}
		for i := range r {
			if taken[at+i] {
				return
			}
		}
		for i, ch := range r {
			line[at+i] = ch
			taken[at+i] = true
		}
		if at+len(r) < len(line) {
			taken[at+len(r)] = true
		}
		if at > 0 {
			taken[at-1] = true
		}
	}

	first := formatTime(tMin)
	last := formatTime(tMax)
	mid := formatTime((tMin + tMax) / 2)

	place(first, gutterWidth-1)
	place(last, len(line)-len([]rune(last)))
	place(mid, gutterWidth+cols/2-len([]rune(mid))/2)

	return strings.TrimRight(string(line), " ")
}

func formatTime(t float64) string {
	return fmt.Sprintf("%.3f", t)
}

func centre(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}

	return strings.Repeat(" ", pad) + s
}
