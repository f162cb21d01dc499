// Package log defines the logging interface and typed logging fields used for
// ownership lifecycle diagnostics.
//
// Adapters (such as the zap package) implement Logger so applications can
// route tracker output through their existing logging backend.
package log
