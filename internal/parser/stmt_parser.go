package parser

import (
	"lang/internal/ast"
	"lang/internal/diag"
	"lang/internal/token"
)

// parseBlock := "[" statement* "]"
//
// A block that runs into EOF or into the next 'func' is reported as
// UnterminatedBlock and returned as a partial node with ok == false.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open, ok := p.expect(token.LBracket, diag.SynUnexpectedToken)
	if !ok {
		return ast.NoStmtID, false
	}

	var stmts []ast.StmtID
	for !p.atOr(token.RBracket, token.EOF, token.KwFunc) {
		before := p.ts.Pos()
		stmtID, ok := p.parseStmt()
		if stmtID.IsValid() {
			stmts = append(stmts, stmtID)
		}
		if !ok {
			p.recovered = true
			if p.ts.Pos() == before && !p.atOr(token.RBracket, token.EOF, token.KwFunc) {
				p.advance()
			}
			p.resyncStatement()
		}
	}

	if !p.at(token.RBracket) {
		p.errUnterminated(UnterminatedBlock, open.Span)
		return p.arenas.Stmts.NewBlock(open.Span.Cover(p.lastSpan), stmts, true), false
	}
	closeTok := p.advance()
	return p.arenas.Stmts.NewBlock(open.Span.Cover(closeTok.Span), stmts, false), true
}

// resyncStatement: panic mode: отбрасываем токены до границы оператора.
// ';' съедается, ']' и ключевые слова начала оператора остаются.
func (p *Parser) resyncStatement() {
	skipped := 0
	for !p.atOr(token.EOF, token.RBracket, token.KwFunc) && !p.ts.Peek().Kind.IsStatementStart() {
		if p.at(token.Semicolon) {
			p.advance()
			skipped++
			break
		}
		p.advance()
		skipped++
	}
	p.traceResync(skipped, p.ts.Peek().Kind.Describe())
}

// parseStmt выбирает распознаватель по первому токену (и второму для присваивания).
// A valid id with ok == false is a usable node followed by a syntax error.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.ts.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwPrint:
		return p.parsePrintStmt()
	case token.LBracket:
		return p.parseBlock()
	case token.Ident:
		if p.ts.Peek2().Kind == token.Assign {
			return p.parseAssignStmt()
		}
	}
	return p.parseExprStmt()
}

// let := "let" IDENT ":" type "=" expr ";"
func (p *Parser) parseLetStmt() (ast.StmtID, bool) {
	letTok := p.advance()
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok = p.expect(token.Colon, diag.SynExpectColon); !ok {
		return ast.NoStmtID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok = p.expect(token.Assign, diag.SynUnexpectedToken); !ok {
		return ast.NoStmtID, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.arenas.Stmts.NewLet(letTok.Span.Cover(p.lastSpan), ast.LetStmt{
		Name:     name,
		NameSpan: nameSpan,
		Type:     typ,
		Value:    value,
	})
	return id, p.expectSemicolon(id)
}

// assign := IDENT "=" expr ";"
func (p *Parser) parseAssignStmt() (ast.StmtID, bool) {
	nameTok := p.advance()
	p.advance() // =
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.arenas.Stmts.NewAssign(nameTok.Span.Cover(p.lastSpan), ast.AssignStmt{
		Name:     p.arenas.StringsInterner.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
		Value:    value,
	})
	return id, p.expectSemicolon(id)
}

// if := "if" expr block ("else" block)?
func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !then.IsValid() {
		return ast.NoStmtID, false
	}
	els := ast.NoStmtID
	if ok && p.at(token.KwElse) {
		p.advance()
		els, ok = p.parseBlock()
		if !els.IsValid() {
			return p.arenas.Stmts.NewIf(ifTok.Span.Cover(p.lastSpan), cond, then, ast.NoStmtID), false
		}
	}
	return p.arenas.Stmts.NewIf(ifTok.Span.Cover(p.lastSpan), cond, then, els), ok
}

// while := "while" expr block
func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !body.IsValid() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWhile(whileTok.Span.Cover(p.lastSpan), cond, body), ok
}

// return := "return" expr? ";"
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	retTok := p.advance()
	value := ast.NoExprID
	if !p.atOr(token.Semicolon, token.RBracket) {
		var ok bool
		if value, ok = p.parseExpr(); !ok {
			return ast.NoStmtID, false
		}
	}
	id := p.arenas.Stmts.NewReturn(retTok.Span.Cover(p.lastSpan), value)
	return id, p.expectSemicolon(id)
}

// print := "print" expr ";"
func (p *Parser) parsePrintStmt() (ast.StmtID, bool) {
	printTok := p.advance()
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.arenas.Stmts.NewPrint(printTok.Span.Cover(p.lastSpan), value)
	return id, p.expectSemicolon(id)
}

// expr-stmt := expr ";"
func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.ts.Peek().Span
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	id := p.arenas.Stmts.NewExprStmt(start.Cover(p.lastSpan), value)
	return id, p.expectSemicolon(id)
}

// expectSemicolon closes a simple statement; the statement span then covers the ';'.
func (p *Parser) expectSemicolon(id ast.StmtID) bool {
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon)
	if ok {
		st := p.arenas.Stmts.Get(id)
		st.Span = st.Span.Cover(semi.Span)
	}
	return ok
}
