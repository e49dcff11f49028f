package main

import (
	"github.com/somranjan/beanio/internal/parser/accessor"
	"github.com/somranjan/beanio/internal/typehandler"
)

// Person is the one Go type this demo binary knows how to bind,
// registered under the mapping-file class name "demo.Person". A
// generic mapping-file engine would load arbitrary bean classes at
// runtime; a Go binary can't do that without its own code generation
// step (the teacher's own caster-generator exists for exactly that
// problem), so this CLI demo is deliberately scoped to one compiled-in
// type rather than pretending to be a general dynamic loader.
type Person struct {
	Name string `beanio:"name"`
	Age  int    `beanio:"age"`
	City string `beanio:"city"`
}

// newEnvironment returns the TypeHandler registry and accessor factory
// this demo's commands build a mapping's Streams against.
func newEnvironment() (*typehandler.Registry, *accessor.Factory) {
	registry := typehandler.NewBuiltinRegistry()

	accessors := accessor.NewFactory()
	accessors.RegisterType("demo.Person", Person{})

	return registry, accessors
}
