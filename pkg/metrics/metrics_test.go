package metrics

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerRecording(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry), WithConstLabels(map[string]string{"env": "test"}))

		Convey("When recording a completed request", func() {
			m.RecordRequest("get_balance", "GET", 200, 120*time.Millisecond, 42)
			m.RecordRequest("get_balance", "GET", 200, 80*time.Millisecond, 42)

			Convey("Then the request counter is labelled by status", func() {
				So(testutil.ToFloat64(m.requests.WithLabelValues("get_balance", "GET", "200")), ShouldEqual, 2)
				So(testutil.CollectAndCount(m.requestDuration), ShouldEqual, 1)
			})
		})

		Convey("When recording errors", func() {
			m.RecordError("transfer", ErrorTypeTransport)
			m.RecordError("transfer", ErrorType(503))

			Convey("Then each type is counted separately", func() {
				So(testutil.ToFloat64(m.errors.WithLabelValues("transfer", ErrorTypeTransport)), ShouldEqual, 1)
				So(testutil.ToFloat64(m.errors.WithLabelValues("transfer", ErrorTypeServerError)), ShouldEqual, 1)
			})
		})

		Convey("When tracking in-flight requests", func() {
			done := m.TrackInFlight()
			So(testutil.ToFloat64(m.inFlight), ShouldEqual, 1)
			done()
			So(testutil.ToFloat64(m.inFlight), ShouldEqual, 0)
		})

		Convey("When writing the text exposition", func() {
			m.RecordRequest("create_invoice", "POST", 201, time.Second, 10)
			var buf bytes.Buffer
			err := m.WriteText(&buf)

			Convey("Then it contains the namespaced metric", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldContainSubstring, `xendit_client_requests_total{endpoint="create_invoice",env="test",method="POST",status="201"} 1`)
			})
		})
	})
}

func TestManagerDisabled(t *testing.T) {
	Convey("Given a disabled manager", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithPrometheusRegistry(registry), WithMetricsEnabled(false))

		Convey("Then recording is a no-op", func() {
			m.RecordRequest("get_balance", "GET", 200, time.Millisecond, 1)
			m.RecordError("get_balance", ErrorTypeTransport)
			m.TrackInFlight()()
			So(testutil.ToFloat64(m.requests.WithLabelValues("get_balance", "GET", "200")), ShouldEqual, 0)
		})
	})

	Convey("Given a nil manager", t, func() {
		var m *Manager
		So(func() { m.RecordRequest("x", "GET", 200, 0, 0) }, ShouldNotPanic)
		So(func() { m.TrackInFlight()() }, ShouldNotPanic)
	})
}

func TestErrorType(t *testing.T) {
	Convey("ErrorType classifies statuses", t, func() {
		So(ErrorType(200), ShouldEqual, "")
		So(ErrorType(404), ShouldEqual, ErrorTypeClientError)
		So(ErrorType(500), ShouldEqual, ErrorTypeServerError)
	})
}

func TestOptions(t *testing.T) {
	Convey("Options override defaults", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithPrometheusRegistry(registry),
			WithNamespace("pay"),
			WithSubsystem("api"),
			WithHistogramBuckets([]float64{0.1, 1}),
		)
		So(m.namespace, ShouldEqual, "pay")
		So(m.subsystem, ShouldEqual, "api")
		So(m.histogramBuckets, ShouldResemble, []float64{0.1, 1})
		So(Default(), ShouldNotBeNil)
		So(GetRegistry(), ShouldNotBeNil)
	})
}
