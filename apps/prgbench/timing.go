//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"
)

// ByteSize formats byte counts for the report.
type ByteSize uint64

func (s ByteSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records timing samples and renders a throughput report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Sample adds a timing sample ending now.
func (t *Timing) Sample(label string) *Sample {
	start := t.Start
	if len(t.Samples) > 0 {
		start = t.Samples[len(t.Samples)-1].End
	}
	sample := &Sample{
		Label: label,
		Start: start,
		End:   time.Now(),
	}
	t.Samples = append(t.Samples, sample)
	return sample
}

// Print prints the report to out.
func (t *Timing) Print(out io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Output").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)

	var bytes uint64
	total := t.Samples[len(t.Samples)-1].End.Sub(t.Start)
	for _, sample := range t.Samples {
		duration := sample.End.Sub(sample.Start)
		bytes += sample.Bytes()

		row := tab.Row()
		row.Column(sample.Label)
		row.Column(duration.String())
		row.Column(fmt.Sprintf("%.2f%%",
			float64(duration)/float64(total)*100))
		row.Column(ByteSize(sample.Bytes()).String())
		row.Column(rate(sample.Bytes(), duration))

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "╰╴"
			} else {
				prefix = "├╴"
			}
			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)
			row.Column(sub.Abs.String()).SetFormat(tabulate.FmtItalic)
			row.Column(
				fmt.Sprintf("%.2f%%", float64(sub.Abs)/float64(duration)*100)).
				SetFormat(tabulate.FmtItalic)
			row.Column(ByteSize(sub.Count).String()).
				SetFormat(tabulate.FmtItalic)
			row.Column(rate(sub.Count, sub.Abs)).SetFormat(tabulate.FmtItalic)
		}
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)
	row.Column(ByteSize(bytes).String()).SetFormat(tabulate.FmtBold)
	row.Column(rate(bytes, total)).SetFormat(tabulate.FmtBold)

	tab.Print(out)
}

func rate(bytes uint64, d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1fMB/s", float64(bytes)/d.Seconds()/1e6)
}

// Sample contains information about one timing sample.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Count   uint64
	Samples []*Sample
}

// AbsSubSample adds a sub-sample with an absolute duration and the
// number of bytes produced.
func (s *Sample) AbsSubSample(label string, duration time.Duration,
	count uint64) {

	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Abs:   duration,
		Count: count,
	})
}

// Bytes returns the number of bytes produced by the sample and its
// sub-samples.
func (s *Sample) Bytes() uint64 {
	result := s.Count
	for _, sub := range s.Samples {
		result += sub.Bytes()
	}
	return result
}
