// Package metrics records build observations for docnav.
//
// Components receive a Recorder. NoopRecorder is the default and costs
// nothing; PrometheusRecorder keeps real counters and histograms in its own
// registry, which the CLI can dump to a node-exporter textfile after a build:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	builder := site.NewBuilder(cfg, site.WithRecorder(rec))
//	...
//	_ = rec.WriteTextfile("/var/lib/node_exporter/docnav.prom")
package metrics
