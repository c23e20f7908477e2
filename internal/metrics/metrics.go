package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters for the inventory domain operations.
type Metrics struct {
	salesRecorded    prometheus.Counter
	salesOutOfStock  prometheus.Counter
	reportsGenerated prometheus.Counter
}

func New() *Metrics {
	return newWithRegisterer(prometheus.DefaultRegisterer)
}

func newWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		salesRecorded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "optica_sales_recorded_total",
			Help: "Total number of lens sales recorded",
		}),
		salesOutOfStock: registerCounter(registerer, prometheus.CounterOpts{
			Name: "optica_sales_out_of_stock_total",
			Help: "Total number of sale attempts rejected for depleted stock",
		}),
		reportsGenerated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "optica_lot_reports_generated_total",
			Help: "Total number of lot reports generated",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	counter := prometheus.NewCounter(opts)
	if err := registerer.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return counter
}

func (m *Metrics) SaleRecorded()    { m.salesRecorded.Inc() }
func (m *Metrics) SaleOutOfStock()  { m.salesOutOfStock.Inc() }
func (m *Metrics) ReportGenerated() { m.reportsGenerated.Inc() }
