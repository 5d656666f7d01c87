// Package executor runs external build tools as local subprocesses.
//
// A [Command] describes one invocation: argv, environment overrides, and a
// working directory. The [Runner] interface is the only execution surface the
// rest of the tool depends on, so tests substitute recording fakes for the
// real [Exec] implementation.
//
// Only the exit status of a process is semantically meaningful. Standard
// output and standard error are passed straight through to the user; no
// decision is ever made from their content. A non-zero exit is reported as a
// [ProcessError] carrying the tool's exit code, which the entry point maps
// onto the process exit code.
package executor
