package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "gotokei"

// 跳过原因，用作 files_skipped_total 的 reason 标签。
const (
	skipHidden   = "hidden"
	skipIgnored  = "ignored"
	skipExcluded = "excluded"
	skipBinary   = "binary"
	skipUnknown  = "unknown"
	skipFiltered = "filtered"
)

// Metrics 汇总一次或多次扫描的计数器。
type Metrics struct {
	FilesCounted *prometheus.CounterVec
	FilesSkipped *prometheus.CounterVec
	ScanErrors   prometheus.Counter
	BytesRead    prometheus.Counter
	ScanDuration prometheus.Histogram
}

// NewMetrics 创建指标并注册到 reg；reg 为 nil 时只创建不注册。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FilesCounted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "files_counted_total",
			Help:      "Files classified, by detected language.",
		}, []string{"language"}),
		FilesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "files_skipped_total",
			Help:      "Files not classified, by reason.",
		}, []string{"reason"}),
		ScanErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "scan_errors_total",
			Help:      "Per-file failures recorded as scan errors.",
		}),
		BytesRead: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bytes_read_total",
			Help:      "Bytes read from classified files.",
		}),
		ScanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall time of a complete scan.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (m *Metrics) skipped(reason string) {
	m.FilesSkipped.WithLabelValues(reason).Inc()
}
