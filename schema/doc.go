/*
Package schema describes the typed options a command accepts, and resolves them into the ordered [Descriptor] list used for matching arguments.

An [Option] is one of [Bool], [Str], or [Num], each carrying common [Meta] details.
Options are declared in a [Map], which remembers declaration order:

	opts := schema.NewMap().
		Set("name", schema.Num{Meta: schema.Meta{Alias: "n"}}).
		Set("value", schema.Bool{})

[Resolve] turns a [Map] into descriptors, and [ResolveBase] does the same after injecting the built-in "help" and "version" flags.
*/
package schema
