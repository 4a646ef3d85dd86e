// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/startup, domain/phase,
// domain/task). This root package holds sentinel errors, the Failure and
// Result types returned by tracker operations, validation types, and the
// Action/WriteStager interfaces used to stage cascading writes.
package domain
