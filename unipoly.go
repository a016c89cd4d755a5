/*
Package unipoly is an algebra engine for univariate polynomials over a generic coefficient field.
It provides dense and sparse polynomial representations with identical semantics, ring arithmetic,
Horner evaluation and composition, long division with remainder and the Euclidean GCD, together with
field adapters for builtin floating point and complex types, rationals, arbitrary precision floats
and prime fields.
*/
package unipoly
