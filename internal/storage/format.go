package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/statmech/internal/ising"
	"github.com/san-kum/statmech/internal/sweep"
)

// SweepHeader is the column line of a sweep table.
const SweepHeader = "T E M Cv chi acceptance_rate"

// sweepBlankLines separates the count line from the header.
const sweepBlankLines = 8

// ErrMalformed indicates a sweep table that cannot be parsed.
var ErrMalformed = errors.New("storage: malformed table")

// FormatFloat renders v with six significant digits, trailing zeros
// dropped.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// EncodeInts writes each value followed by a single space, then a newline.
func EncodeInts(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// EncodeFloats writes the values space separated on one line.
func EncodeFloats(w io.Writer, values []float64) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatFloat(v)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// EncodeTraces writes the ordered start's energy, magnetisation and
// acceptance rows, then the random start's.
func EncodeTraces(w io.Writer, ordered, random ising.Trace) error {
	rows := [][]int{
		ordered.Energy, ordered.Magnetisation, ordered.Accepted,
		random.Energy, random.Magnetisation, random.Accepted,
	}
	for _, r := range rows {
		if err := EncodeInts(w, r); err != nil {
			return err
		}
	}
	return nil
}

// EncodeHistogram writes "E,count" pairs in ascending energy order, each
// followed by a space.
func EncodeHistogram(w io.Writer, hist map[int]int) error {
	bw := bufio.NewWriter(w)
	for _, e := range ising.SortedEnergies(hist) {
		fmt.Fprintf(bw, "%d,%d ", e, hist[e])
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// EncodeSweep writes the point count, blank lines, the column header and
// one row per point.
func EncodeSweep(w io.Writer, points []sweep.Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d N\n", len(points))
	bw.WriteString(strings.Repeat("\n", sweepBlankLines))
	bw.WriteString(SweepHeader + "\n")
	for _, p := range points {
		s := p.Stats
		row := []string{
			FormatFloat(p.Temperature),
			FormatFloat(s.Energy),
			FormatFloat(s.Magnetisation),
			FormatFloat(s.SpecificHeat),
			FormatFloat(s.Susceptibility),
			FormatFloat(s.AcceptanceRate),
		}
		bw.WriteString(strings.Join(row, " ") + "\n")
	}
	return bw.Flush()
}

// DecodeSweep parses a table written by EncodeSweep. Seeds and sample
// counts are not stored and come back zero.
func DecodeSweep(r io.Reader) ([]sweep.Point, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	var n int
	if _, err := fmt.Sscanf(sc.Text(), "%d N", &n); err != nil {
		return nil, fmt.Errorf("%w: count line %q", ErrMalformed, sc.Text())
	}

	headerSeen := false
	points := make([]sweep.Point, 0, n)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !headerSeen {
			if line != SweepHeader {
				return nil, fmt.Errorf("%w: header %q", ErrMalformed, line)
			}
			headerSeen = true
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrMalformed, len(points), len(fields))
		}
		var v [6]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, len(points), err)
			}
			v[i] = x
		}
		points = append(points, sweep.Point{
			Index:       len(points),
			Temperature: v[0],
			Stats: ising.Statistics{
				Energy:         v[1],
				Magnetisation:  v[2],
				SpecificHeat:   v[3],
				Susceptibility: v[4],
				AcceptanceRate: v[5],
			},
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(points) != n {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformed, n, len(points))
	}
	return points, nil
}
