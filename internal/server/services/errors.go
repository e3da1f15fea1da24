// Package services contains the portal's business logic: submission,
// status lookup, and administrative review workflows over the injected
// persistence and object-storage gateways.
package services

import "fmt"

// Stage names the submission workflow step a failure happened in. The
// labels double as the user-visible progress messages.
type Stage string

const (
	StageDuplicateCheck  Stage = "checking for duplicates"
	StageUploadPhoto     Stage = "uploading photo"
	StageUploadSignature Stage = "uploading signature"
	StageFinalize        Stage = "finalizing submission"
)

// StageError wraps a gateway failure with the stage it interrupted, so the
// caller can tell a photo upload failure from a signature one.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// DuplicateError reports a submission whose Aadhaar is already on file. It
// carries the existing registration number so the applicant can track the
// earlier submission instead.
type DuplicateError struct {
	Aadhaar            string
	RegistrationNumber string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("an application with Aadhaar %s already exists (registration number %s)",
		e.Aadhaar, e.RegistrationNumber)
}

// ValidationError reports a malformed field before any gateway call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
