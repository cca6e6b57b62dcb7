// Package token defines lexical token kinds for Clang module-map files.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Module-map keywords are contextual: the lexer classifies them, but
//     every keyword token is also a valid name wherever the grammar expects
//     an identifier (module names, requires features). The parser decides.
//   - String literal tokens keep their quotes and escapes; unescaping is
//     the parser's job.
package token
