// Package log provides structured logging for the triangle toolchain.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a small structured logging system with
//              contextual fields, log levels, JSON and text output formats and
//              integration with the coded error type. The parser, the engine
//              and the command line front end all log through it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Trimmed to synchronous logging, correlation ids per run
//
// Features:
// - Structured logging with JSON, text and console formats
// - Level filtering
// - Persistent context fields and correlation ids
// - Coded errors are logged with code, severity and details
// - Timers for measuring phases such as scanning and parsing
//
// Usage:
//   import mdwlog "github.com/msto63/triangle/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithName("parser").
//     WithCorrelationID(runID)
//
//   logger.Debug("parsed command", mdwlog.Fields{"row": 3, "kind": "assign"})
//
//   timer := logger.StartTimer("parse")
//   tree, err := p.Parse()
//   timer.Stop()
package log
