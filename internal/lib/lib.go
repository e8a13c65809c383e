// Package lib groups modules that do not fit strictly into other layers.
//
// It contains background job processing (Redis/Asynq), the email client
// (Resend) and password hashing.
package lib
