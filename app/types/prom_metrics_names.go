// SPDX-FileCopyrightText: Copyright (c) 2016-2025, CloudZero, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package types

import "strings"

// MetricPrefix namespaces every metric the service exports.
const MetricPrefix = "pacman_"

// Metric returns metricName prefixed with "pacman_".
//
// The input metric name must not be empty and must not already start with
// the "pacman" prefix. If these conditions are violated, the function will
// panic, since metric names are compile-time constants.
//
// Example usage:
//
//	metric := Metric("location_probe_total") // Returns "pacman_location_probe_total"
func Metric(metricName string) string {
	prefix, _, _ := strings.Cut(metricName, "_")
	if prefix == "" || prefix == "pacman" {
		panic("metricName contains a forbidden prefix or is empty")
	}
	return MetricPrefix + metricName
}
