// Package token splits serjson text into tokens.
//
// The grammar is space delimited: every piece of punctuation must be
// separated from its neighbours by a literal space, as the encoder writes
// it. A chunk's trailing ',' is dropped and a trailing ':' becomes its own
// token. Quoted strings containing spaces are split like anything else, and
// there is no escape handling. Minified text does not tokenize.
//
// Tokens are consumed through a [Stack], which yields them front to back.
package token
