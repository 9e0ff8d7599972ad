// Package engine orchestrates extraction runs.
//
// An extraction walks the manifest's resource instances, classifies
// their raw parameter values into tagged literals, renders each
// instance as an aligned resource block, applies quote-boundary
// promotions, and assembles the configuration document and the
// configuration data file. Runs and their artifacts are optionally
// persisted through the stores package.
//
// Errors are classified so callers can tell manifest problems
// (ErrorClassValidation) apart from persistence failures
// (ErrorClassPersistence) without string matching.
package engine
