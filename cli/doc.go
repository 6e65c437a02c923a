/*
Package cli provides an opinionated way to declare a command line program, and dispatch its arguments to the right [Command].

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - A [Program] is built once with a [Builder], and is immutable afterward.
  - Commands are one level deep. The first argument either names a [Command], or everything goes to the default command.
  - Flags may be interspersed with positional arguments, and "--" ends flag parsing.
  - Parsing errors are returned, never printed or turned into an exit code. That's up to main.

# Invocation

Invoking a program always follows one of these forms:

	CLI_NAME COMMAND [FLAGS...] [ARGS...]
	CLI_NAME [FLAGS...] [ARGS...]

The second form runs the default command, which is a [Command] registered without a name.
If there is no default command, then the second form does nothing.

# Options

Each [Command] declares its options with a [schema.Map], and [argv] does the parsing.
The default command always accepts "--help" (-h) and "--version" (-v) in addition to its own options.
Named commands accept "--help" once [Builder.EnableHelp] is called.

# Usage by default

Usage information can be incredibly helpful for understanding a tool's purpose and expectations.
Once help is enabled, "-h" and "--help" show usage information instead of running the [Command], even if other arguments are invalid.
A [Command] without an [Action] shows its usage information when it's run.

Flag usage and command listings are formatted by a [Renderer], which is [TextRenderer] unless [Builder.Renderer] is used.

NOTE: Commands will show usage information after an error only if the error is a [UsageError].

# Interactive mode

Developers want nice things too, especially with tooling they rely on.
[Program.Interactive] reads command lines from a reader and runs them in-process.

If you want to work with a particular command the [UseCommand] can be used to push arguments to an invocation stack.
Use the [BackCommand] to pop the invocation stack and go back to where you were.

To exit interactive mode, use one of the [InteractiveQuitCommands] at the prompt.
*/
package cli
