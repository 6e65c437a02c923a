/*
Package clif is a small command line interface library built around an ordered option schema.

The packages are layered so each can be used on its own:
  - [github.com/saylorsolutions/clif/schema] declares options and resolves them into ordered descriptors.
  - [github.com/saylorsolutions/clif/argv] tokenizes arguments against descriptors, in strict or lenient mode.
  - [github.com/saylorsolutions/clif/cli] dispatches to commands, with help, version, and interactive support.

The cmd/flash directory has a small program showing how they fit together.
*/
package clif
