package trackers

import (
	"fmt"
	"log"

	"github.com/OverKoder/Jormungandr/experiment/tracker"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ReturnPlot tracks episodic returns like Return, but Save draws the
// cumulative return over episodes as a learning curve image. The image
// format is taken from the file extension (e.g. .png, .svg, .pdf).
type ReturnPlot struct {
	*Return
	label    string
	filename string
}

// NewReturnPlot returns a ReturnPlot that saves its learning curve to
// filename, labelling the curve with label
func NewReturnPlot(filename, label string) *ReturnPlot {
	return &ReturnPlot{NewReturn(""), label, filename}
}

// Points returns the cumulative return after each finished episode
func (r *ReturnPlot) Points() plotter.XYs {
	cumulative := make([]float64, len(r.Data()))
	floats.CumSum(cumulative, r.Data())

	pts := make(plotter.XYs, len(cumulative))
	for i := range cumulative {
		pts[i].X = float64(i + 1)
		pts[i].Y = cumulative[i]
	}
	return pts
}

// Save draws and saves the learning curve. If the filename is empty,
// Save is a no-op.
func (r *ReturnPlot) Save() {
	if r.filename == "" {
		return
	}
	if err := r.save(); err != nil {
		log.Fatalf("could not save return plot: %v", err)
	}
}

func (r *ReturnPlot) save() error {
	p := plot.New()

	p.Title.Text = "Learning Progress"
	p.X.Label.Text = "Episodes"
	p.Y.Label.Text = "Cumulative Reward"

	if len(r.Data()) > 0 {
		line, err := plotter.NewLine(r.Points())
		if err != nil {
			return fmt.Errorf("save: could not create line plotter: %v", err)
		}

		p.Add(line)
		total := floats.Sum(r.Data())
		p.Legend.Add(fmt.Sprintf("%v (reward sum = %v)", r.label, total),
			line)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, r.filename); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

var _ tracker.Tracker = &ReturnPlot{}
