package telemetry

import (
	"fmt"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Dashboard is a live instruction/cycle throughput view served over HTTP,
// adapted from the teacher's own statsview.Launch wrapper (previously
// build-tag gated and unused by the Atari core) into an always-available
// part of the telemetry package, started only when config.Config's
// TelemetryEnabled is set.
type Dashboard struct {
	viewer *statsview.ViewManager
	addr   string
}

// StartDashboard launches a statsview server at addr and returns a handle
// that can later be stopped. The dashboard serves whatever process-wide
// runtime metrics statsview collects; per-run instruction/cycle counters
// live independently in Counters and are not pushed into statsview, since
// statsview's view is process metrics rather than caller-defined gauges.
func StartDashboard(addr string) *Dashboard {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	v := statsview.New()
	go v.Start()
	return &Dashboard{viewer: v, addr: addr}
}

// Stop shuts the dashboard server down.
func (d *Dashboard) Stop() {
	if d.viewer != nil {
		d.viewer.Stop()
	}
}

// URL returns the dashboard's debug endpoint, for a caller to print or log.
func (d *Dashboard) URL() string {
	return fmt.Sprintf("http://%s/debug/statsview", d.addr)
}
