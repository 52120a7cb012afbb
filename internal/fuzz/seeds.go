package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

// corpusSeeds is drawn from the package test suites: documents covering
// every trivia placement, plus inputs that hit each diagnostic path.
var corpusSeeds = []string{
	"",
	"null",
	"42",
	"-3.5e2",
	`"hi"`,
	`"é \n \\"`,
	"{}",
	"[]",
	"[1, 2, 3]",
	`{ "a": 1, "b": 2 }`,
	"[1, 2,]",
	"[1, 2,,]",
	`{"a": 1, "b": 2, "a": 3}`,
	"// c1\n{\n  /* c2 */\n  \"project\": \"fjson\",\n  \"license\": [\n    \"MIT\",\n  ],\n\n\n  // c3\n  \"public\": true,\n}",
	"{\n  \"a\": 1, // trailing\n\n  // leading\n  \"b\": [\n    2,\n    // dangling\n  ],\n}",
	"\n\n// above\n{\"a\": null} // trailing\n// below\n",
	"{ // after opener\n  \"k\" /* after key */: /* after colon */ 1,\n}",
	"[[[[[[[[1]]]]]]]]",
	"{\"a\": \"unterminated",
	"{\"a\": 01}",
	"/* unterminated",
	"[1 2]",
	"tru",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range corpusSeeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxFuzzInput {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxFuzzInput]...)
}
