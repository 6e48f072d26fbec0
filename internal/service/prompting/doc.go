// Package prompting orchestrates the advanced prompting techniques exposed
// by the API: few-shot learning, chain-of-thought, tree-of-thought,
// self-consistency, and meta-prompting.
//
// The service owns the per-task temperatures and thinking budgets, the
// fan-out patterns for the multi-call techniques, and the shaping of results
// into the wire format. It depends only on the generation.Generator boundary
// and carries no provider-specific code.
package prompting
