// Package provider implements the gateway to the translation model. It
// builds the structured request payload, normalizes the model's JSON
// answer into per-target strings plus optional linguistic annotations,
// and wraps backends with bounded retries behind a circuit breaker.
package provider
