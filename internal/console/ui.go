package console

// The widget toolkit is reached only through these capability
// interfaces, so the workflow logic compiles without one.

type Dialog interface {
	Show()
	Hide()
}

// ChartRenderer draws one chart. kind is the chart family the reports
// page uses ("pie", "bar"); labels and series run in parallel.
type ChartRenderer interface {
	RenderChart(kind string, labels []string, series []float64)
}

type Alerter interface {
	Alert(message string)
}

type Confirmer interface {
	Confirm(message string) bool
}

type Navigator interface {
	Navigate(path string)
}

type NopDialog struct{}

func (NopDialog) Show() {}
func (NopDialog) Hide() {}

type NopChartRenderer struct{}

func (NopChartRenderer) RenderChart(string, []string, []float64) {}

type NopAlerter struct{}

func (NopAlerter) Alert(string) {}

type NopNavigator struct{}

func (NopNavigator) Navigate(string) {}

// AlertFunc, ConfirmFunc, and NavigateFunc adapt plain functions to the
// capability interfaces.
type AlertFunc func(string)

func (f AlertFunc) Alert(message string) { f(message) }

type ConfirmFunc func(string) bool

func (f ConfirmFunc) Confirm(message string) bool { return f(message) }

type NavigateFunc func(string)

func (f NavigateFunc) Navigate(path string) { f(path) }

// alwaysConfirm is the default when no Confirmer is supplied.
type alwaysConfirm struct{}

func (alwaysConfirm) Confirm(string) bool { return true }
