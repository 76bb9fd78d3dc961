// Package order contains the Order aggregate and its value objects:
// the status workflow, the print option enumerations, and the records of
// files uploaded with a submission. All construction goes through validated
// factory functions so persisted orders always satisfy the schema rules.
package order
