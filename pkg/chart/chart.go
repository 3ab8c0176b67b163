package chart

// Chart is a constructed bar chart: a dataset, its layout and its resolved
// style. A Chart is immutable and may be rendered any number of times.
type Chart struct {
	data   Dataset
	layout Layout
	style  Style
}

// Bar is the geometry of one rendered bar together with the data point it
// represents.
type Bar struct {
	Index  int     `json:"index"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Rect   Rect    `json:"rect"`
	Anchor Point   `json:"label_anchor"`
	// SlotLeft and SlotRight bound the horizontal slot the bar sits in.
	SlotLeft  float64 `json:"slot_left"`
	SlotRight float64 `json:"slot_right"`
}

// New validates cfg and data, computes the layout and resolves every unset
// style option. Errors are INVALID_CONFIG or INVALID_DATA coded errors from
// package errors; no drawing happens on failure.
func New(cfg Config, data Dataset) (*Chart, error) {
	l, err := NewLayout(cfg, data)
	if err != nil {
		return nil, err
	}
	return &Chart{
		data:   data.Clone(),
		layout: l,
		style:  ResolveStyle(cfg, l, NewRand(cfg.Seed)),
	}, nil
}

// Layout returns the chart geometry.
func (c *Chart) Layout() Layout { return c.layout }

// Style returns the resolved chart style.
func (c *Chart) Style() Style { return c.style }

// Data returns a copy of the chart's dataset.
func (c *Chart) Data() Dataset { return c.data.Clone() }

// Bars returns the geometry of every bar in dataset order.
func (c *Chart) Bars() []Bar {
	l := c.layout
	bars := make([]Bar, len(c.data))
	for i, p := range c.data {
		left := l.HorizontalMargin + float64(i)*l.HorizontalLabelFrequency
		bars[i] = Bar{
			Index:     i,
			Label:     p.Label,
			Value:     p.Value,
			Rect:      l.Bar(i, p.Value),
			Anchor:    l.HorizontalLabel(i),
			SlotLeft:  left,
			SlotRight: left + l.HorizontalLabelFrequency,
		}
	}
	return bars
}

// Render draws the chart onto s: the axes, the guidelines when enabled,
// then the tick label, category label and bar of every index.
//
// Ticks and guidelines mark slot boundaries, so their loops run to
// ItemCount inclusive. The last iteration has no data point; it draws the
// bottom tick label and the closing guideline pair but no bar.
func (c *Chart) Render(s Surface) {
	c.drawAxes(s)

	n := c.layout.ItemCount
	if c.style.UseGuidelines {
		for i := 0; i <= n; i++ {
			c.drawGuidelines(s, i)
		}
	}
	for i := 0; i <= n; i++ {
		c.drawLabels(s, i)
		c.drawBar(s, i)
	}
}

func (c *Chart) drawAxes(s Surface) {
	vertical, horizontal := c.layout.Axes()
	s.DrawLine(c.style.AxisColor, c.style.AxisWidth, vertical.From, vertical.To)
	s.DrawLine(c.style.AxisColor, c.style.AxisWidth, horizontal.From, horizontal.To)
}

func (c *Chart) drawGuidelines(s Surface, i int) {
	vertical, horizontal := c.layout.Guidelines(i)
	s.DrawLine(c.style.GuidelineColor, c.style.GuidelineWidth, vertical.From, vertical.To)
	s.DrawLine(c.style.GuidelineColor, c.style.GuidelineWidth, horizontal.From, horizontal.To)
}

func (c *Chart) drawLabels(s Surface, i int) {
	tick := c.layout.VerticalLabel(i)
	s.DrawText(c.style.VerticalFont, AlignRight, BaselineAlphabetic, c.style.FontColor, tick.Text, tick.X, tick.Y)

	if i >= len(c.data) || c.data[i].Label == "" {
		return
	}
	at := c.layout.HorizontalLabel(i)
	s.DrawText(c.style.HorizontalFont, AlignCenter, BaselineTop, c.style.FontColor, c.data[i].Label, at.X, at.Y)
}

func (c *Chart) drawBar(s Surface, i int) {
	if i >= len(c.data) {
		return
	}
	r := c.layout.Bar(i, c.data[i].Value)
	s.DrawRect(c.style.BarColor, c.style.BarBorderColor, r.Origin, r.Size)
}
