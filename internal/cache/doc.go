// Package cache provides durable storage for translation results using
// a local SQLite database. Entries are keyed by source language, target
// set, and normalized input text, survive process restarts, and are never
// invalidated since a translation of fixed text is treated as a stable fact.
package cache
