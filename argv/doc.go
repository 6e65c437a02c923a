/*
Package argv tokenizes an argument vector against a list of [schema.Descriptor].

Parsing is a single forward pass over the arguments, consuming one token at a time, or two when a flag takes its value from the next token.

  - "--name" and "-n" match an option by name or alias, and "--name=value" or "-n=value" carry an inline value.
  - Boolean options never take a value.
  - String and number options take the inline value, or the next argument if it isn't itself a flag.
  - "--" ends flag recognition, and every argument after it is positional.
  - Flags that match nothing are collected in [Result.Unknown], or rejected with [Config.Strict].

Flags may appear anywhere among positionals.
*/
package argv
