// Package processor wires the translation pipeline together: configuration,
// logging, the provider gateway with retries, the translation cache, and the
// per-user stores. It drives the pipeline in the mode picked on the command
// line: batch file, single message, or interactive chat.
package processor
