/*
Package assert provides support for expressing validation constraints in a user-friendly way.

Validation that can fail in more than one place should report every failure at once, so the developer can fix a registration mistake in one pass.
The [Collector] gathers those errors and is itself an error that works with [errors.Is] and [errors.As].
*/
package assert
