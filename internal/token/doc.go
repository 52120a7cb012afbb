// Package token defines lexical token kinds and trivia for the fjson parser.
// Invariants:
//   - Token.Text is the raw source text of the token, including string quotes
//     and comment delimiters.
//   - Token.Span matches Text exactly (Start..End).
//   - Comments and newlines never appear in the main token stream; they are
//     carried as leading Trivia on the next significant token.
//   - Consecutive '\n' bytes coalesce into a single TriviaNewline whose Text
//     retains the full run, so the parser can detect blank lines.
package token
