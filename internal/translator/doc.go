// Package translator contains the core orchestration logic: it resolves
// a parsed intent into a source and target set, consults the durable
// cache, calls the model provider on a miss, and writes the validated
// result back. This package coordinates the language registry, cache,
// and provider packages.
package translator
