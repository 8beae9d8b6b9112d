// Package llm rewrites text through a hosted language model. Providers
// (Anthropic, OpenAI, Gemini) sit behind a single-method Client so the
// rewriter, timeout handling and tests stay provider-agnostic.
package llm
