// Package translit runs the full Bangla to Devanagari pipeline.
//
// A Transliterator normalizes its input, rewrites it with the rule engine,
// converts it sentence by sentence and finally asks an optional refiner to
// polish the result. A Session adds what belongs to one user: custom word
// overrides applied after the pipeline and a feedback trainer.
package translit
