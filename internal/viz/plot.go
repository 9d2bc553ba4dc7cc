// Package viz renders flight runs in the terminal: ascii plots of the
// trajectory and a live view of a running flight.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rocketsim/internal/flight"
)

func AltitudePlot(states []flight.State) string {
	data := make([]float64, len(states))
	for i, st := range states {
		data[i] = st.Pos.Z
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("altitude [m]"),
	)
}

func SpeedPlot(states []flight.State) string {
	data := make([]float64, len(states))
	for i, st := range states {
		data[i] = st.Vel.Norm()
	}
	return asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("speed [m/s]"),
	)
}
