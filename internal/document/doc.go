// Package document reads and writes the YAML form of programs and levels.
//
// Documents reference cards by name. Decoding checks the document shape
// against an embedded JSON schema, checks the optional format version, then
// resolves names to card indices. Every problem found is reported in a single
// *ValidationError and no partially valid value is ever returned, so the
// execution packages can assume their inputs are well formed.
package document
