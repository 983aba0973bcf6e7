// Package kernel holds the value objects shared by the job and user aggregates.
// Today that is UUID, the identifier type every aggregate and DTO converts through.
package kernel
