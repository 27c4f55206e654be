// Package nlp talks to the external text-generation service that handles
// idioms, complex sentences, final refinement and corpus submission. Every
// call is bounded by a timeout, rate limited and guarded by a circuit
// breaker, and every failure is reported as ErrUnavailable.
package nlp
