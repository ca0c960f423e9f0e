/*
Package corpus builds the seed corpus for fuzzing a streaming URL decoder.

The decoder under test reads its input in fixed-size buffers and carries
state across reads: whether it is inside a URL, a pending partial
percent-escape, a pending partial scheme prefix. Most seeds here are
deterministic payloads whose interesting bytes sit at exact offsets around
that buffer boundary. A few randomized seeds add broad coverage.

Seeds are written once, verbatim, one file per scenario. The fuzz harness
discovers them by listing the corpus directory; there is no manifest.
*/
package corpus
