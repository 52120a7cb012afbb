package driver

import (
	"fjson/internal/diag"
	"fjson/internal/lexer"
	"fjson/internal/source"
	"fjson/internal/token"
)

// TokenizeResult holds the token stream of one file.
type TokenizeResult struct {
	Path    string
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
	FileSet *source.FileSet
}

// TokenizeFile lexes a single file, collecting all tokens including EOF.
func TokenizeFile(path string, maxDiagnostics int) (TokenizeResult, error) {
	if maxDiagnostics <= 0 {
		maxDiagnostics = 64
	}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return TokenizeResult{}, err
	}

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return TokenizeResult{
		Path:    path,
		FileID:  fileID,
		Tokens:  tokens,
		Bag:     bag,
		FileSet: fileSet,
	}, nil
}
