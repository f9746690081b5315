// Package config defines the configuration surface of the health
// aggregation engine and its demo binary: the debounce interval of the
// recomputation loop, the wait-time kick behavior, logging settings, and
// the simulated component set used by cmd/healthmon.
//
// Configuration is loaded from a YAML file with environment variable
// overrides, and validated before use. The debounce interval is an
// explicit, documented value rather than a hidden constant.
package config
