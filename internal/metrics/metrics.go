package metrics

import (
	"strings"
	"sync"
	"time"

	"mirror-demo/internal/scene"

	"github.com/prometheus/client_golang/prometheus"
)

// LightSnapshot is one light as served by /debug/frame
type LightSnapshot struct {
	Position [3]float32 `json:"position"`
	Color    [3]float32 `json:"color"`
}

// FrameSnapshot describes the most recently rendered frame
type FrameSnapshot struct {
	Frame        uint64             `json:"frame"`
	Time         float64            `json:"time"`
	FrameMillis  float64            `json:"frameMillis"`
	RenderMillis float64            `json:"renderMillis"`
	Camera       [3]float32         `json:"camera"`
	Lights       []LightSnapshot    `json:"lights"`
	Passes       map[string]float64 `json:"passesMillis,omitempty"`
}

// Recorder feeds per-frame timings into a private Prometheus registry and keeps the
// last frame's state for the debug endpoint.
type Recorder struct {
	registry      *prometheus.Registry
	frameDuration prometheus.Histogram
	passDuration  *prometheus.HistogramVec
	renderTime    prometheus.Gauge
	frames        prometheus.Counter

	mu   sync.Mutex
	last FrameSnapshot
}

// PassPrefix selects which profiling entries are reported as render passes
const PassPrefix = "renderer."

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mirror",
			Name:      "frame_duration_seconds",
			Help:      "Wall time spent producing one frame.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 8),
		}),
		passDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mirror",
			Name:      "pass_duration_seconds",
			Help:      "CPU time spent issuing one render pass.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 10),
		}, []string{"pass"}),
		renderTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mirror",
			Name:      "render_seconds",
			Help:      "CPU time of all render passes in the last frame.",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mirror",
			Name:      "frames_total",
			Help:      "Number of frames rendered.",
		}),
	}
	r.registry.MustRegister(r.frameDuration, r.passDuration, r.renderTime, r.frames)
	return r
}

// Registry is where extra collectors are registered to appear on /metrics
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Timings are the measured durations of one frame
type Timings struct {
	Frame time.Duration
	// Render is the sum of every PassPrefix profiling entry.
	Render time.Duration
	// Passes maps profiling names to durations; entries without PassPrefix are ignored.
	Passes map[string]time.Duration
}

// Observe records frame f
func (r *Recorder) Observe(f *scene.Frame, tm Timings) {
	r.frames.Inc()
	r.frameDuration.Observe(tm.Frame.Seconds())
	r.renderTime.Set(tm.Render.Seconds())

	millis := make(map[string]float64)
	for name, d := range tm.Passes {
		pass, ok := strings.CutPrefix(name, PassPrefix)
		if !ok {
			continue
		}
		r.passDuration.WithLabelValues(pass).Observe(d.Seconds())
		millis[pass] = float64(d) / float64(time.Millisecond)
	}

	lights := make([]LightSnapshot, 0, len(f.Lights))
	for _, l := range f.Lights {
		lights = append(lights, LightSnapshot{Position: l.Position, Color: l.Color})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = FrameSnapshot{
		Frame:        r.last.Frame + 1,
		Time:         f.Time,
		FrameMillis:  float64(tm.Frame) / float64(time.Millisecond),
		RenderMillis: float64(tm.Render) / float64(time.Millisecond),
		Camera:       f.Camera.Position,
		Lights:       lights,
		Passes:       millis,
	}
}

// Last returns a copy of the latest snapshot
func (r *Recorder) Last() FrameSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
