package mock

import "github.com/fwojciec/lawtree"

var _ lawtree.Parser = (*Parser)(nil)

// Parser is a mock implementation of lawtree.Parser.
type Parser struct {
	ParseFn func(content, title, documentType string) (*lawtree.ParseResult, error)
}

func (p *Parser) Parse(content, title, documentType string) (*lawtree.ParseResult, error) {
	return p.ParseFn(content, title, documentType)
}
