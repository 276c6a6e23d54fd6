package projectile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ChartRenderer renders named values as a bar chart. The computation side
// relies on nothing else about the backend; a rendering failure never
// invalidates the collected numbers.
type ChartRenderer interface {
	Render(labels []string, values []float64) error
}

// BodyAngle is the launch angle required on a given body, when one exists.
type BodyAngle struct {
	Body  CelestialBody
	Angle float64 // degrees, meaningful only when OK
	OK    bool
}

// AngleChart compares the required launch angle across celestial bodies for
// fixed launch parameters.
type AngleChart struct {
	V0, D, H float64
	Results  []BodyAngle
}

// CollectAngles computes, for each body, the smaller valid launch angle for
// the given speed, distance and height. Bodies with no valid angle stay in
// the result with OK unset and get a log line; only invalid parameters fail.
func CollectAngles(v0, d, h float64, bodies []CelestialBody, logger kitlog.Logger) (*AngleChart, error) {
	chart := &AngleChart{V0: v0, D: d, H: h, Results: make([]BodyAngle, 0, len(bodies))}
	for _, body := range bodies {
		angles, err := LaunchAngles(v0, d, h, body.G)
		if err != nil {
			return nil, err
		}
		res := BodyAngle{Body: body}
		if len(angles) > 0 {
			res.Angle = angles[0]
			res.OK = true
		} else {
			kitlog.With(logger, "body", body.Name, "g", body.G).Log("msg", "no valid angle")
		}
		chart.Results = append(chart.Results, res)
	}
	return chart, nil
}

// Labels returns the body names in table order.
func (c *AngleChart) Labels() []string {
	labels := make([]string, len(c.Results))
	for i, res := range c.Results {
		labels[i] = res.Body.Name
	}
	return labels
}

// Values returns the angles in table order, zero for unsolvable bodies.
func (c *AngleChart) Values() []float64 {
	values := make([]float64, len(c.Results))
	for i, res := range c.Results {
		if res.OK {
			values[i] = res.Angle
		}
	}
	return values
}

// Render draws the chart through the provided renderer.
func (c *AngleChart) Render(r ChartRenderer) error {
	return r.Render(c.Labels(), c.Values())
}

// WriteCSV streams the chart data as body,gravity_ms2,angle_deg rows. The
// angle cell is empty for bodies without a valid angle.
func (c *AngleChart) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"body", "gravity_ms2", "angle_deg"}); err != nil {
		return err
	}
	for _, res := range c.Results {
		angle := ""
		if res.OK {
			angle = strconv.FormatFloat(res.Angle, 'f', 4, 64)
		}
		record := []string{res.Body.Name, strconv.FormatFloat(res.Body.G, 'f', -1, 64), angle}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// PNGRenderer renders a bar chart to a PNG file via gonum/plot. Each bar
// carries its value as a label, a dash when there is no valid angle.
type PNGRenderer struct {
	Path string
}

// Render implements ChartRenderer.
func (r PNGRenderer) Render(labels []string, values []float64) error {
	if len(labels) != len(values) {
		return fmt.Errorf("%d labels for %d values", len(labels), len(values))
	}
	p := plot.New()
	p.Title.Text = "Launch angle across celestial bodies"
	p.Y.Label.Text = "Launch angle [°]"
	p.Y.Min = 0
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	marks := plotter.XYLabels{XYs: make(plotter.XYs, len(values)), Labels: make([]string, len(values))}
	for i, v := range values {
		marks.XYs[i] = plotter.XY{X: float64(i), Y: v + 0.5}
		if v > 0 {
			marks.Labels[i] = strconv.FormatFloat(v, 'f', 1, 64) + "°"
		} else {
			marks.Labels[i] = "–"
		}
	}
	annotations, err := plotter.NewLabels(marks)
	if err != nil {
		return err
	}
	p.Add(annotations)
	return p.Save(6*vg.Inch, 4*vg.Inch, r.Path)
}
