package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"softring/protocol"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
)

// recorder is the runner sink for a trace. Frames are kept as series;
// with raw set every envelope is also copied to raw, one per line.
type recorder struct {
	raw io.Writer

	world     protocol.World
	ticks     []int
	areas     []float64
	centroidY []float64
	closed    bool
}

var errClosed = errors.New("recorder closed")

func (r *recorder) Send(b []byte) error {
	if r.closed {
		return errClosed
	}
	if r.raw != nil {
		if _, err := fmt.Fprintf(r.raw, "%s\n", b); err != nil {
			return err
		}
	}
	env, err := protocol.DecodeEnvelope(b)
	if err != nil {
		return err
	}
	switch env.T {
	case protocol.MsgWorld:
		w, err := protocol.DecodePayload[protocol.World](env)
		if err != nil {
			return err
		}
		r.world = w
	case protocol.MsgFrame:
		f, err := protocol.DecodePayload[protocol.Frame](env)
		if err != nil {
			return err
		}
		r.ticks = append(r.ticks, f.Tick)
		r.areas = append(r.areas, f.Area)
		r.centroidY = append(r.centroidY, f.Centroid.Y)
	}
	return nil
}

func (r *recorder) Close() error {
	r.closed = true
	return nil
}

// report renders the recorded series as plots plus a summary box.
func (r *recorder) report(target float64) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("SOFTRING TRACE") + "\n")

	if len(r.areas) > 1 {
		chart := asciigraph.Plot(r.areas, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("enclosed area"))
		s.WriteString(graphStyle.Render(chart) + "\n")
		chart = asciigraph.Plot(r.centroidY, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("centroid y (down is up the plot)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Nodes", fmt.Sprintf("%d", r.world.Nodes))
	row("Obstacles", fmt.Sprintf("%d", len(r.world.Obstacles)))
	row("Frames", fmt.Sprintf("%d", r.lastTick()))
	row("Target area", fmt.Sprintf("%.1f", target))
	if n := len(r.areas); n > 0 {
		last := r.areas[n-1]
		row("Final area", fmt.Sprintf("%.1f (%+.1f%%)", last, 100*(last-target)/target))
		lo, hi := minMax(r.areas)
		row("Area range", fmt.Sprintf("%.1f .. %.1f", lo, hi))
		row("Centroid y", fmt.Sprintf("%.1f", r.centroidY[n-1]))
	}
	return boxStyle.Render(s.String())
}

func (r *recorder) lastTick() int {
	if len(r.ticks) == 0 {
		return 0
	}
	return r.ticks[len(r.ticks)-1]
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return lo, hi
}
