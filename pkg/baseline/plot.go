package baseline

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveResidualPlot writes a scatter of each row's out-of-fold prediction
// against its actual log-space target, with the identity line for
// reference. CrossValidate or Extract must have run first. Diagnostic only;
// the artifact is unaffected.
func (e *Extractor) SaveResidualPlot(path string) error {
	if e.cv == nil || len(e.cv.Actual) == 0 {
		return errors.New("baseline: no cross-validation results to plot")
	}

	p := plot.New()
	p.Title.Text = "Cross-validated predictions"
	p.X.Label.Text = "Actual log(1+elapsed)"
	p.Y.Label.Text = "Predicted log(1+elapsed)"

	pts := make(plotter.XYs, len(e.cv.Actual))
	lo, hi := e.cv.Actual[0], e.cv.Actual[0]
	for i := range e.cv.Actual {
		pts[i].X = e.cv.Actual[i]
		pts[i].Y = e.cv.Predicted[i]
		if pts[i].X < lo {
			lo = pts[i].X
		}
		if pts[i].X > hi {
			hi = pts[i].X
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot cross-validated predictions: %w", err)
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	l, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return fmt.Errorf("plot cross-validated predictions: %w", err)
	}
	l.Color = color.RGBA{R: 255, A: 255}
	p.Add(l)

	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot cross-validated predictions: %w", err)
	}
	return nil
}
