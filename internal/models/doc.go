// Package models lists the chat models available to the configured OpenAI
// API key, so users can pick one for the --model flag.
package models
