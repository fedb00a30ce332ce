// Package internal holds small helpers shared by every other package.
package internal

// Version is the build version reported by the helper's ping response
// and the CLI --version flag.
const Version = "1.2.0"
