package internal

// Version is the current tetraglot version
const Version = "0.1.0"
