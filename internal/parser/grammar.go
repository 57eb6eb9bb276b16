package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Whitespace is kept as a token so that "1 2" and "12" stay distinct.
// The Space class matches what unicode.IsSpace accepts, so splitting
// agrees with the trimming done in parser.go.
// Rule order matters: an Int wins over Other at the start of a word.
var descriptorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Space", Pattern: `[\s\v\x{85}\p{Z}]+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Other", Pattern: `[^\s\v\x{85}\p{Z}]`},
})

// descriptor is one input line split into whitespace separated words.
type descriptor struct {
	Words []*word `parser:"Space? ( @@ Space? )*"`
}

// word is a run of non-space tokens. Only the first token decides the
// numeric value; everything after it is ignored, so "1.2" reads as 1.
type word struct {
	Lead *lead    `parser:"@@"`
	Rest []string `parser:"( @Int | @Other )*"`
}

type lead struct {
	Int   *string `parser:"  @Int"`
	Other *string `parser:"| @Other"`
}

var descriptorParser = participle.MustBuild[descriptor](
	participle.Lexer(descriptorLexer),
)

func parseDescriptor(text string) (*descriptor, error) {
	return descriptorParser.ParseString("descriptor", text)
}
