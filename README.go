/*
Package moreiter is a toolkit for working with Go iterators.

Overview

The packages extend the range-over-func iterators of the standard library
with the operations that keep coming back when data is streamed through a program:
taking a bounded prefix, chunking, picking the first, last or nth element,
asserting that an iterator has exactly one or exactly n elements,
interleaving, repeating, splitting, conditional mapping, flattening values,
successive differences, wall-clock bounded iteration,
and coercing arbitrary values into something that can be iterated.

Every operation pulls only as many elements from its source as its result requires,
so they can be used with infinite and single-use iterators alike.

Directory Structure

	pkg/iterkit                   the iterator operations and the Iterable, Sequence and Reversible protocols
	pkg/iterkit/iterkitcontract   contracts that protocol implementations can be tested with
	pkg/seqview                   a read-through view over a sequence
	pkg/errorkit                  constant errors, error details and causes
	pkg/logger                    structured JSON logging
	port/option                   functional options
	port/contract                 the shape of the reusable contract test suites

Errors

Failures are returned as values.
Lazy operations that can fail return an iterkit.SeqE,
where the error arrives as the last element of the iteration.
Error kinds are constants, so they can be checked with errors.Is.
*/
package moreiter
