// Package logger wraps zap with a global sugared logger and context helpers.
//
// Services receive a context.Context and log through the logger stored in it
// (see ToContext, FromContext, WithName and WithKV). When the context carries
// no logger, the global one is used.
package logger
