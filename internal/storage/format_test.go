package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/statmech/internal/ising"
	"github.com/san-kum/statmech/internal/sweep"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{2.0285714285, "2.02857"},
		{-1.9972, "-1.9972"},
		{0.00001, "1e-05"},
		{123456789, "1.23457e+08"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeInts(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeInts(&buf, []int{-800, 4, 0}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "-800 4 0 \n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeTracesOrder(t *testing.T) {
	ordered := ising.Trace{Energy: []int{-8}, Magnetisation: []int{4}, Accepted: []int{0}}
	random := ising.Trace{Energy: []int{0}, Magnetisation: []int{2}, Accepted: []int{1}}

	var buf bytes.Buffer
	if err := EncodeTraces(&buf, ordered, random); err != nil {
		t.Fatal(err)
	}
	want := "-8 \n4 \n0 \n0 \n2 \n1 \n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeHistogram(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeHistogram(&buf, map[int]int{-796: 2, -800: 5, -792: 1}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "-800,5 -796,2 -792,1 \n" {
		t.Errorf("got %q", got)
	}
}

func samplePoints() []sweep.Point {
	return []sweep.Point{
		{Index: 0, Temperature: 2.0, Stats: ising.Statistics{Energy: -1.7455, Magnetisation: 0.9113, SpecificHeat: 0.7, Susceptibility: 0.00435, AcceptanceRate: 0.042}},
		{Index: 1, Temperature: 2.2, Stats: ising.Statistics{Energy: -1.55, Magnetisation: 0.78, SpecificHeat: 1.21, Susceptibility: 0.25, AcceptanceRate: 0.08}},
	}
}

func TestEncodeSweepLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSweep(&buf, samplePoints()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "2 N" {
		t.Errorf("count line %q", lines[0])
	}
	for i := 1; i <= 8; i++ {
		if lines[i] != "" {
			t.Errorf("line %d should be blank, got %q", i, lines[i])
		}
	}
	if lines[9] != SweepHeader {
		t.Errorf("header %q", lines[9])
	}
	if lines[10] != "2 -1.7455 0.9113 0.7 0.00435 0.042" {
		t.Errorf("row %q", lines[10])
	}
}

func TestSweepRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSweep(&buf, samplePoints()); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSweep(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := samplePoints()
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeSweepMalformed(t *testing.T) {
	inputs := map[string]string{
		"empty":      "",
		"count":      "x N\n",
		"header":     "1 N\nT E\n",
		"short row":  "1 N\n" + SweepHeader + "\n2 3\n",
		"bad number": "1 N\n" + SweepHeader + "\n2 a 3 4 5 6\n",
		"row count":  "2 N\n" + SweepHeader + "\n1 2 3 4 5 6\n",
	}
	for name, in := range inputs {
		if _, err := DecodeSweep(strings.NewReader(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}
