// Package commands contains business operations that modify system state.
// Every command follows the same shape: a constructor-guarded command value
// carrying validated input, and a handler that coordinates the repositories
// and the file store, including compensating cleanup on partial failure.
package commands
