// Provides platform-appropriate paths for the tool.
//
// Project-scoped files (the build config, the arceos checkout) live at the
// invocation root; only the user-level defaults file follows XDG conventions.
package paths
