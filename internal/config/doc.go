// Package config defines the abstract configuration tree that
// internal/parser.Build consumes (spec.md §3 "Lifecycle": the parser
// tree is built once at stream-open time from an immutable
// configuration). The XML-schema-validated mapping-file loader that
// produces this tree in BeanIO proper is out of scope (spec.md §1); this
// package instead offers a YAML-native rendering of the same element set
// (spec.md §6) so the tree and its builder have a real, testable path
// from bytes to a running Stream.
package config
