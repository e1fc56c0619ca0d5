package parser

// SymbolTable records every declared variable and its declared kind
// (TokenInt or TokenFloat). Names are case-sensitive and share one flat
// namespace.
type SymbolTable struct {
	kinds map[string]TokenKind
	order []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{kinds: make(map[string]TokenKind)}
}

// Declare adds name with the given kind. It returns false and leaves the
// existing entry untouched if name is already declared.
func (s *SymbolTable) Declare(name string, kind TokenKind) bool {
	if _, ok := s.kinds[name]; ok {
		return false
	}
	s.kinds[name] = kind
	s.order = append(s.order, name)
	return true
}

func (s *SymbolTable) IsDeclared(name string) bool {
	_, ok := s.kinds[name]
	return ok
}

func (s *SymbolTable) Lookup(name string) (TokenKind, bool) {
	kind, ok := s.kinds[name]
	return kind, ok
}

func (s *SymbolTable) Len() int {
	return len(s.order)
}

// Names returns the declared names in declaration order.
func (s *SymbolTable) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}
