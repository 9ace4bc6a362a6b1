// Package logger provides structured logging for pandora using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. The container logs through a component logger
// tagged "di".
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "my-service").WithComponent("di")
//	log.Debug("binding registered", logger.Fields(logger.FieldKey, "Foo"))
package logger
