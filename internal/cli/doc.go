// Parses flags and dispatches the axtask subcommands.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-c, --config    Project build config path.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global log level is reconfigured before the selected command runs. Every
// command except version requires a Cargo manifest at the invocation root.
package cli
