package chart

const (
	datasetLabel    = "Patients by Condition"
	backgroundColor = "rgba(75, 192, 192, 0.2)"
	borderColor     = "rgba(75, 192, 192, 1)"
)

// BarChart is a Chart.js bar chart configuration. The frontend discards its
// previous chart instance and draws this one whenever the data changes.
type BarChart struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	BorderWidth     int    `json:"borderWidth"`
}

type ChartOptions struct {
	Responsive          bool         `json:"responsive"`
	MaintainAspectRatio bool         `json:"maintainAspectRatio"`
	Plugins             ChartPlugins `json:"plugins"`
	Scales              ChartScales  `json:"scales"`
}

type ChartPlugins struct {
	Legend struct {
		Display bool `json:"display"`
	} `json:"legend"`
}

type ChartScales struct {
	Y struct {
		BeginAtZero bool `json:"beginAtZero"`
	} `json:"y"`
}

// NewBarChart builds one bar per histogram bin. An empty histogram yields a
// chart with no labels and an empty dataset.
func NewBarChart(h Histogram) BarChart {
	c := BarChart{
		Type: "bar",
		Data: ChartData{
			Labels: h.Labels(),
			Datasets: []Dataset{{
				Label:           datasetLabel,
				Data:            h.Counts(),
				BackgroundColor: backgroundColor,
				BorderColor:     borderColor,
				BorderWidth:     1,
			}},
		},
		Options: ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
		},
	}
	c.Options.Plugins.Legend.Display = false
	c.Options.Scales.Y.BeginAtZero = true
	return c
}
