// Package model exposes the form display engine: the Working Model types,
// the permissive document parser, the tree builder, the pure mutation
// methods, and the deterministic generator. Engine logic lives in
// internal/model; this package re-exports the types and entry points so
// callers never import internal paths. Every operation is a pure
// transformation: mutations deep-copy their receiver and return the modified
// copy, which keeps scripted sequences composable and lets independent
// models be processed concurrently without locking.
package model
