// Package logger provides the structured logging interface used across
// the client, backed by zerolog.
package logger

// Logger is the narrow logging contract the rest of the client depends
// on. The component argument identifies the emitting subsystem.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Critical(component, message string, err error)
}
