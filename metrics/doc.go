// Package metrics exports target statistics to Prometheus.
//
//	c := metrics.NewCollector("")
//	c.Register("app", fileTarget)
//	prometheus.MustRegister(c)
package metrics
