// Package zap bridges the ownership/log abstraction to go.uber.org/zap while
// preserving structured fields, so tracker diagnostics flow into the host
// application's zap pipeline.
package zap
