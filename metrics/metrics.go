package metrics

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/asynkron/test262-reporter/types"
)

const (
	MetricsNamespace = "test262"
)

var (
	Debug                bool = true
	nonAlphanumericRegex      = regexp.MustCompile(`[^a-zA-Z ]+`)

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	groupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "groups_total",
		Help:      "Count of groups run",
	}, []string{
		"run_id",
		"group",
		"result",
	})

	reportResults = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "report_results",
		Help:      "Result of the report run",
	}, []string{
		"run_id",
		"result",
	})

	reportTestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "report_test_total",
		Help:      "Total number of tests across all groups",
	}, []string{
		"run_id",
	})

	reportTestPassed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "report_test_passed",
		Help:      "Number of passed tests across all groups",
	}, []string{
		"run_id",
	})

	reportTestFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "report_test_failed",
		Help:      "Number of failed tests across all groups",
	}, []string{
		"run_id",
	})

	reportDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Name:      "report_duration",
		Help:      "Duration of the report run in seconds",
	}, []string{
		"run_id",
	})
)

// errToLabel tries to make the error string a more valid Prometheus label
func errToLabel(err error) string {
	if err == nil {
		return "nil"
	}
	errClean := nonAlphanumericRegex.ReplaceAllString(err.Error(), "")
	errClean = strings.ReplaceAll(errClean, " ", "_")
	errClean = strings.ReplaceAll(errClean, "__", "_")
	return errClean
}

func RecordError(error string) {
	if Debug {
		log.Debug("metric inc",
			"m", "errors_total",
			"error", error,
		)
	}
	errorsTotal.WithLabelValues(error).Inc()
}

// RecordErrorDetails concats the error message to the label
// and also tries to clean the label to be a valid Prometheus label
func RecordErrorDetails(label string, err error) {
	if err == nil {
		return
	}
	label = fmt.Sprintf("%s.%s", label, errToLabel(err))
	RecordError(label)
}

// RecordGroup records the outcome of a single group run.
func RecordGroup(runID string, result types.GroupResult) {
	if Debug {
		log.Debug("metric inc",
			"m", "groups_total",
			"run_id", runID,
			"group", result.Group,
			"result", result.Status())
	}
	groupsTotal.WithLabelValues(runID, result.Group, string(result.Status())).Inc()
}

// RecordReport records the run-level totals once the report completes.
func RecordReport(runID string, stats types.RunStats, duration time.Duration) {
	reportResults.WithLabelValues(runID, string(stats.Status())).Set(1)
	reportTestTotal.WithLabelValues(runID).Add(float64(stats.Total()))
	reportTestPassed.WithLabelValues(runID).Add(float64(stats.Passed))
	reportTestFailed.WithLabelValues(runID).Add(float64(stats.Failed))
	reportDuration.WithLabelValues(runID).Set(duration.Seconds())
}
