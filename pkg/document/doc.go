// Package document converts automata to and from their structured document form.
//
// The document is a flat record with the keys "states", "alphabet",
// "transition_table", "start_state" and "accept_states". It is written as indented
// JSON, or as YAML when the file name ends in .yaml or .yml. Loading is atomic: a
// document with a missing key, a value of the wrong shape or a broken invariant
// yields ErrMalformedDocument and no automaton.
package document
