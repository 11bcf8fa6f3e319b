// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// The dsbench command exercises the containers in this module with
// workloads described by a YAML config and reports their throughput,
// followed by the module's table counters.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aristanetworks/glog"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	aglog "github.com/aristanetworks/gods/glog"
)

func main() {
	configFlag := flag.String("config", "", "Path to the YAML workload config")
	parallel := flag.Bool("parallel", false,
		"Run workloads concurrently, one container instance each")
	flag.Parse()
	if *configFlag == "" {
		glog.Fatal("You need to specify a config file using -config flag")
	}
	raw, err := os.ReadFile(*configFlag)
	if err != nil {
		glog.Fatalf("Can't read config file %q: %v", *configFlag, err)
	}
	log := &aglog.Glog{}
	config, err := parseConfig(raw, log)
	if err != nil {
		glog.Fatal(err)
	}

	results := make([]result, len(config.Workloads))
	var group errgroup.Group
	if !*parallel {
		group.SetLimit(1)
	}
	for i, w := range config.Workloads {
		i, w := i, w
		group.Go(func() error {
			r, err := runWorkload(w, log)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		glog.Fatal(err)
	}

	for _, r := range results {
		fmt.Println(r)
	}
	printTableMetrics()
}

// printTableMetrics dumps this module's counters from the default
// prometheus registry.
func printTableMetrics() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		glog.Errorf("Can't gather metrics: %v", err)
		return
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "gods_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			fmt.Printf("%s %s\n", mf.GetName(), humanize.Commaf(m.GetCounter().GetValue()))
		}
	}
}
