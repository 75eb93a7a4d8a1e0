// Package orchestrator wires the load → decode → parse → mutate →
// render/generate pipeline behind a single entry point with dependency
// injection friendly options. Operations are named, reusable closures over
// the pure engine methods, so scripted sequences compose and re-run safely.
package orchestrator
