package common

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

func (p *AstProgram) MarshalYAML() (any, error) {
	return programNode(p), nil
}

func programNode(p *AstProgram) *yaml.Node {
	stmts := seqNode()
	for _, stmt := range p.Stmts {
		stmts.Content = append(stmts.Content, nodeToYAML(stmt))
	}

	return mapNode(
		"node", scalarNode("Program"),
		"span", spanNode(p),
		"stmts", stmts,
	)
}

func nodeToYAML(node AstNode) *yaml.Node {
	switch v := node.(type) {
	case *AstLet:
		return mapNode(
			"node", scalarNode("Let"),
			"span", spanNode(v),
			"name", scalarNode(v.Symbol.Name),
			"value", nodeToYAML(v.Initializer),
		)
	case *AstReturn:
		return mapNode("node", scalarNode("Return"), "span", spanNode(v), "value", nodeToYAML(v.Value))
	case *AstExprStmt:
		return mapNode("node", scalarNode("ExprStmt"), "span", spanNode(v), "value", nodeToYAML(v.Expr))
	case *AstBinaryOp:
		return mapNode(
			"node", scalarNode("Binary"),
			"span", spanNode(v),
			"op", scalarNode(v.OpKind.String()),
			"lhs", nodeToYAML(v.Lhs),
			"rhs", nodeToYAML(v.Rhs),
		)
	case *AstUnaryOp:
		return mapNode(
			"node", scalarNode("Unary"),
			"span", spanNode(v),
			"op", scalarNode(v.OpKind.String()),
			"operand", nodeToYAML(v.Operand),
		)
	case *AstGrouping:
		return mapNode("node", scalarNode("Grouping"), "span", spanNode(v), "inner", nodeToYAML(v.Inner))
	case *AstBlock:
		stmts := seqNode()
		for _, stmt := range v.Stmts {
			stmts.Content = append(stmts.Content, nodeToYAML(stmt))
		}
		return mapNode("node", scalarNode("Block"), "span", spanNode(v), "stmts", stmts)
	case *AstIdent:
		return mapNode("node", scalarNode("Ident"), "span", spanNode(v), "name", scalarNode(v.Name))
	case *AstLiteral:
		return mapNode(
			"node", scalarNode("Literal"),
			"span", spanNode(v),
			"kind", scalarNode(v.Value.Kind.String()),
			"value", scalarNode(v.Value.Text()),
		)
	case *AstProgram:
		return programNode(v)
	default:
		return scalarNode(fmt.Sprintf("<unknown node %T>", node))
	}
}

/* -------------------------------------------------------------------------- */

func mapNode(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i < len(kv); i += 2 {
		n.Content = append(n.Content, scalarNode(kv[i].(string)), kv[i+1].(*yaml.Node))
	}

	return n
}

func seqNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode}
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func spanNode(node AstNode) *yaml.Node {
	span := node.GetSpan()
	n := seqNode()
	n.Style = yaml.FlowStyle
	n.Content = []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(span.Start)},
		{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(span.End)},
	}

	return n
}
