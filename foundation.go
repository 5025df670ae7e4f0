// Package foundation is the root of the foundation SDK for Go. The SDK
// provides a validated record model (pkg/model), process-wide logging setup
// (pkg/logger) and configuration loading (config) for host applications.
package foundation

// Version is the SDK release version.
const Version = "0.0.1"
