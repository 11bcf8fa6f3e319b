// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashtable

import "github.com/prometheus/client_golang/prometheus"

var probeSteps = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "gods",
	Subsystem: "hashtable",
	Name:      "probe_steps_total",
	Help:      "Slots examined while probing, across all tables",
})

var grows = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "gods",
	Subsystem: "hashtable",
	Name:      "grows_total",
	Help:      "Capacity growths triggered by exhausted probe paths",
})

var rehashed = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "gods",
	Subsystem: "hashtable",
	Name:      "rehashed_entries_total",
	Help:      "Entries reinserted while rehashing into grown buffers",
})

func init() {
	prometheus.MustRegister(probeSteps)
	prometheus.MustRegister(grows)
	prometheus.MustRegister(rehashed)
}
