// Package services holds the record stores and device-facing flows behind
// the client screens.
//
// CredentialStore and QuestionnaireStore validate a record, serialize it as
// JSON and overwrite a single storage slot (last write wins). Loads treat a
// missing or unreadable slot as "no record": corrupt payloads are logged and
// reported as absent rather than failing the screen.
//
// When sealing is enabled, values are encrypted with a random device key
// kept in the same store; sealed and plain values can be read either way.
package services
