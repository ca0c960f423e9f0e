package corpus

import (
	"bytes"
)

// Padding fillers. Each scenario gets its own byte so a failing input can be
// recognized on sight. None of them is 'h', ':', '/' or '%', so padding can
// never start a scheme prefix or an escape of its own.
const (
	fillCrossURL      = 'A'
	fillSplitEscape1  = 'X'
	fillSplitEscape2  = 'Y'
	fillSplitPrefix   = 'Z'
	fillSplitHTTPS    = 'S'
	fillTruncScheme   = 'T'
	fillFullBuffer    = 'W'
	fillURLEnd        = 'E'
	fillSplitMultiEsc = 'Q'
)

const (
	basicSample = "Here is a link: http://example.com/foo%20bar and another https://test.org/base%21"

	crossURL       = "https://cross.boundary.com/part1/"
	crossURLLead   = 10
	crossURLBodyLn = 50

	// splitEscape is decoded to a space, which the decoder may also be asked
	// to keep escaped.
	splitEscape        = "%20"
	splitEscapeTrailer = 100

	splitPrefixURL = "http://example.com/split_prefix"
	splitHTTPSURL  = "https://secure.split.example/p%41th"
	truncSchemeURL = "http://truncated.scheme.example/a%42c"

	fullBufferHead = "http://full.buffer.example/"
	fullBufferTail = "%41/tail"

	urlEndURL   = "http://edge.example/end%2Fz"
	urlEndAfter = " after the edge"

	// multiEscHead ends with the first byte of U+5929, the rest of its
	// escapes follow the boundary.
	multiEscHead = " https://www.baidu.com/s?ie=UTF-8&wd=%E5"
	multiEscTail = "%A4%A9%E6%B0%94 weather"

	malformedHead   = "http://bad.com/%%%"
	malformedRepeat = "%GG%00"
	malformedCount  = 100
)

// padding returns n copies of fill. A negative n yields no padding.
func padding(fill byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	return bytes.Repeat([]byte{fill}, n)
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// BasicSample is a short human-readable text with two well-formed URLs. It
// is a regression baseline, not a boundary case.
func BasicSample() []byte {
	return []byte(basicSample)
}

// CrossBoundaryURL starts an https URL ten bytes before the boundary and
// continues it well past it, so the decoder must keep its in-URL state
// across a refill.
func CrossBoundaryURL(bufSize int) []byte {
	return concat(
		padding(fillCrossURL, bufSize-crossURLLead),
		[]byte(crossURL),
		bytes.Repeat([]byte{'B'}, crossURLBodyLn),
	)
}

// SplitEscapeAtPercent places the '%' of "%20" as the last byte of the
// first buffer and both hex digits at the head of the next.
func SplitEscapeAtPercent(bufSize int) []byte {
	return concat(
		padding(fillSplitEscape1, bufSize-1),
		[]byte(splitEscape),
		bytes.Repeat([]byte{'C'}, splitEscapeTrailer),
	)
}

// SplitEscapeAtFirstDigit places "%2" at the end of the first buffer and the
// final '0' at the head of the next.
func SplitEscapeAtFirstDigit(bufSize int) []byte {
	return concat(
		padding(fillSplitEscape2, bufSize-2),
		[]byte(splitEscape),
		bytes.Repeat([]byte{'D'}, splitEscapeTrailer),
	)
}

// SplitSchemePrefix ends the first buffer with "http:" so the "//" and the
// host arrive in the next read.
func SplitSchemePrefix(bufSize int) []byte {
	return concat(padding(fillSplitPrefix, bufSize-5), []byte(splitPrefixURL))
}

// SplitHTTPSPrefix is SplitSchemePrefix for the six byte "https:" token.
func SplitHTTPSPrefix(bufSize int) []byte {
	return concat(padding(fillSplitHTTPS, bufSize-6), []byte(splitHTTPSURL))
}

// TruncatedScheme splits the scheme word itself: "htt" ends the first
// buffer and "p://" begins the next. A decoder that only matches complete
// prefixes inside one read misses this URL.
func TruncatedScheme(bufSize int) []byte {
	return concat(padding(fillTruncScheme, bufSize-3), []byte(truncSchemeURL))
}

// FullBufferURL is a single URL that starts at offset zero and fills the
// whole first buffer, with a '%' as its last byte. The decoder has to flush
// part of the URL before it ends without cutting the escape in two.
func FullBufferURL(bufSize int) []byte {
	return concat(
		[]byte(fullBufferHead),
		padding(fillFullBuffer, bufSize-1-len(fullBufferHead)),
		[]byte(fullBufferTail),
	)
}

// URLEndsAtBoundary puts the last byte of a URL at offset bufSize-1 and the
// terminating space at bufSize.
func URLEndsAtBoundary(bufSize int) []byte {
	return concat(
		padding(fillURLEnd, bufSize-len(urlEndURL)-1),
		[]byte{' '},
		[]byte(urlEndURL),
		[]byte(urlEndAfter),
	)
}

// SplitMultiByteEscape splits a run of escapes encoding UTF-8 text so that
// the '%' of the second escape of a three byte sequence lands at
// bufSize-1.
func SplitMultiByteEscape(bufSize int) []byte {
	return concat(
		padding(fillSplitMultiEsc, bufSize-1-len(multiEscHead)),
		[]byte(multiEscHead),
		[]byte(multiEscTail),
	)
}

// Malformed is a URL followed by bare '%' runs, non-hex escapes and "%00".
// It does not depend on the buffer size.
func Malformed() []byte {
	return concat([]byte(malformedHead), bytes.Repeat([]byte(malformedRepeat), malformedCount))
}
