// Package metrics instruments the engine with Prometheus counters and a
// histogram. A nil *Recorder is a documented no-op: every method guards
// against it, so callers that don't care about metrics can pass nil
// straight through without a feature flag.
package metrics
