// SPDX-License-Identifier: EPL-2.0

// Package metrics counts augmentation outcomes with Prometheus collectors.
//
// A batch run has no scrape endpoint, so the collected values are written
// once at the end in the text exposition format, ready for the
// node_exporter textfile collector.
package metrics
