package ast

// Block is a `{ ... }` statement list.
type Block struct {
	BaseNode
	Statements []Statement
}

func (b *Block) Children() []Node { return stmtNodes(b.Statements) }

// AppendStatement appends a statement and reparents it.
func (b *Block) AppendStatement(s Statement) {
	b.Statements = append(b.Statements, s)
	s.base().parent = b
}

// InsertStatement inserts a statement at index i, keeping ordering and the
// statement's parent pointer consistent in one step.
func (b *Block) InsertStatement(i int, s Statement) {
	b.Statements = insertAt(b.Statements, i, s)
	s.base().parent = b
}

// RemoveStatement detaches the statement at index i with its subtree.
func (b *Block) RemoveStatement(i int) Statement {
	s := b.Statements[i]
	b.Statements = removeAt(b.Statements, i)
	orphan(s)
	return s
}

// UncheckedBlock is an `unchecked { ... }` statement list (compiler 0.8.0+).
type UncheckedBlock struct {
	BaseNode
	Statements []Statement
}

func (b *UncheckedBlock) Children() []Node { return stmtNodes(b.Statements) }

// AppendStatement appends a statement and reparents it.
func (b *UncheckedBlock) AppendStatement(s Statement) {
	b.Statements = append(b.Statements, s)
	s.base().parent = b
}

func stmtNodes(stmts []Statement) []Node {
	out := make([]Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

// ExpressionStatement wraps an expression used as a statement.
type ExpressionStatement struct {
	BaseNode
	Expr Expression
}

func (s *ExpressionStatement) Children() []Node {
	if s.Expr == nil {
		return nil
	}
	return []Node{s.Expr}
}

// VariableDeclarationStatement declares one or more local variables.
// Declarations may contain nil entries for skipped tuple components, as in
// `(, uint b) = f();`.
type VariableDeclarationStatement struct {
	BaseNode
	Declarations []*VariableDeclaration
	InitialValue Expression
}

func (s *VariableDeclarationStatement) Children() []Node {
	var out []Node
	for _, d := range s.Declarations {
		if d != nil {
			out = append(out, d)
		}
	}
	if s.InitialValue != nil {
		out = append(out, s.InitialValue)
	}
	return out
}

// IfStatement is `if (cond) true-body [else false-body]`.
type IfStatement struct {
	BaseNode
	Condition Expression
	TrueBody  Statement
	FalseBody Statement
}

func (s *IfStatement) Children() []Node {
	out := []Node{s.Condition, s.TrueBody}
	if s.FalseBody != nil {
		out = append(out, s.FalseBody)
	}
	return out
}

// ForStatement is `for (init; cond; post) body`; any of the three header
// slots may be nil.
type ForStatement struct {
	BaseNode
	Init      Statement
	Condition Expression
	Post      Statement
	Body      Statement
}

func (s *ForStatement) Children() []Node {
	var out []Node
	if s.Init != nil {
		out = append(out, s.Init)
	}
	if s.Condition != nil {
		out = append(out, s.Condition)
	}
	if s.Post != nil {
		out = append(out, s.Post)
	}
	out = append(out, s.Body)
	return out
}

// WhileStatement is `while (cond) body`.
type WhileStatement struct {
	BaseNode
	Condition Expression
	Body      Statement
}

func (s *WhileStatement) Children() []Node {
	return []Node{s.Condition, s.Body}
}

// DoWhileStatement is `do body while (cond);`.
type DoWhileStatement struct {
	BaseNode
	Condition Expression
	Body      Statement
}

func (s *DoWhileStatement) Children() []Node {
	return []Node{s.Body, s.Condition}
}

// Return is `return [expr];`. FunctionReturns references the enclosing
// function's return parameter list.
type Return struct {
	BaseNode
	Expr            Expression
	FunctionReturns Ref[*ParameterList]
}

func (s *Return) Children() []Node {
	if s.Expr == nil {
		return nil
	}
	return []Node{s.Expr}
}

// Break is `break;`.
type Break struct {
	BaseNode
}

func (*Break) Children() []Node { return nil }

// Continue is `continue;`.
type Continue struct {
	BaseNode
}

func (*Continue) Children() []Node { return nil }

// EmitStatement is `emit E(...);` (compiler 0.4.21+).
type EmitStatement struct {
	BaseNode
	Call *FunctionCall
}

func (s *EmitStatement) Children() []Node {
	return []Node{s.Call}
}

// RevertStatement is `revert E(...);` with a custom error (compiler
// 0.8.4+). Plain `revert(...)` parses as an ExpressionStatement instead.
type RevertStatement struct {
	BaseNode
	Call *FunctionCall
}

func (s *RevertStatement) Children() []Node {
	return []Node{s.Call}
}

// PlaceholderStatement is the `_;` placeholder inside a modifier body.
type PlaceholderStatement struct {
	BaseNode
}

func (*PlaceholderStatement) Children() []Node { return nil }

func (*Block) isStatement()                        {}
func (*UncheckedBlock) isStatement()               {}
func (*ExpressionStatement) isStatement()          {}
func (*VariableDeclarationStatement) isStatement() {}
func (*IfStatement) isStatement()                  {}
func (*ForStatement) isStatement()                 {}
func (*WhileStatement) isStatement()               {}
func (*DoWhileStatement) isStatement()             {}
func (*Return) isStatement()                       {}
func (*Break) isStatement()                        {}
func (*Continue) isStatement()                     {}
func (*EmitStatement) isStatement()                {}
func (*RevertStatement) isStatement()              {}
func (*PlaceholderStatement) isStatement()         {}
