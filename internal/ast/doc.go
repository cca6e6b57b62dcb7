// Package ast defines the declaration tree produced by parsing a Clang
// module-map file: a small sum type (Module, Header, Opaque) with a
// DeclKind discriminant. The tree is built once per parse, never mutated
// afterwards, and carries no back-references; recursive ownership through
// Module.Members is the only structure.
package ast
