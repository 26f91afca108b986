// Package cli defines the nasaimager command tree.
//
// The root command opens the interactive browser. Subcommands cover the
// same lookups for scripts and pipes:
//
//	nasaimager search <query...> [--limit n]
//	nasaimager asset <id> [--copy]
//	nasaimager logs [-n lines] [--level lvl]
//	nasaimager cache purge [--all]
//	nasaimager version
//
// Output is colored with fatih/color unless --no-color is given or stdout
// is not a terminal.
package cli
