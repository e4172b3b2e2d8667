// Package metrics reports interpreter activity as Prometheus counters:
// instances created (by module), frames pushed/popped, and
// interruptions raised (by kind). It implements the runtime.Metrics
// interface so wiring it into an Evaluation is a one-line constructor
// argument; an Evaluation given a nil runtime.Metrics skips reporting,
// so the core runs without any observability backend. A nil *Recorder
// is not usable: its methods dereference its counters.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder implements runtime.Metrics against a Prometheus registry.
type Recorder struct {
	instancesCreated *prometheus.CounterVec
	framesPushed     prometheus.Counter
	framesPopped     prometheus.Counter
	interruptsRaised *prometheus.CounterVec
}

// New registers the core's counters on reg and returns a Recorder
// that reports to them. Pass prometheus.NewRegistry() (or
// prometheus.DefaultRegisterer wrapped via NewRegistry) to avoid
// collector collisions across multiple Evaluations in the same
// process.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		instancesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wollok_core",
			Name:      "instances_created_total",
			Help:      "Number of runtime instances created, by module.",
		}, []string{"module"}),
		framesPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wollok_core",
			Name:      "frames_pushed_total",
			Help:      "Number of evaluator frames pushed.",
		}),
		framesPopped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wollok_core",
			Name:      "frames_popped_total",
			Help:      "Number of evaluator frames popped.",
		}),
		interruptsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wollok_core",
			Name:      "interrupts_raised_total",
			Help:      "Number of interruptions raised, by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(r.instancesCreated, r.framesPushed, r.framesPopped, r.interruptsRaised)
	return r
}

func (r *Recorder) InstanceCreated(module string) {
	r.instancesCreated.WithLabelValues(module).Inc()
}

func (r *Recorder) FramePushed() {
	r.framesPushed.Inc()
}

func (r *Recorder) FramePopped() {
	r.framesPopped.Inc()
}

func (r *Recorder) InterruptRaised(kind string) {
	r.interruptsRaised.WithLabelValues(kind).Inc()
}
