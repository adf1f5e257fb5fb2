package grammars

import (
	gg "github.com/odvcencio/xonshts/grammargen"
)

// Precedence levels of the xonsh grammar. Binary operators take
// primary_expression operands, so most conflicts never reach the tables.
const (
	precLambda      = -2
	precConditional = -1
	precComprehend  = 0
	precParenthesis = 1
	precOr          = 10
	precAnd         = 11
	precNot         = 12
	precCompare     = 13
	precBitOr       = 14
	precBitAnd      = 15
	precBitXor      = 16
	precShift       = 17
	precPlus        = 18
	precTimes       = 19
	precUnary       = 20
	precPower       = 21
	precCall        = 22
)

// scannerTokens are the named terminals XonshScanner produces.
var scannerTokens = []string{
	"_newline", "_indent", "_dedent", "_whitespace", "comment",
	"identifier", "integer", "float", "ellipsis",
	"string_start", "path_string_start", "string_content", "escape_sequence", "string_end",
	"type_conversion", "_format_text",
	"env_variable", "word", "brace_expansion", "subprocess_modifier",
	"pipe_operator", "logical_operator", "redirect_operator", "stream_merge_operator",
	"regex_glob", "regex_path_glob", "glob_pattern", "glob_path", "formatted_glob", "custom_function_glob",
	"macro_argument",
}

// XonshGrammar declares the xonsh grammar: the Python statement and
// expression language plus environment variables, substitutions, globs and
// subprocess commands.
func XonshGrammar() *gg.Grammar {
	g := gg.New("xonsh")
	g.Tokens(scannerTokens...)
	g.Extras("_whitespace", "comment")

	defineStatements(g)
	defineCompound(g)
	defineExpressions(g)
	defineCollections(g)
	defineStrings(g)
	defineXonsh(g)

	g.Insertable(")", "]", "}", ":", "_newline", "identifier")
	g.Protected("_newline", "_indent", "_dedent")

	// A "(" after an operand always opens a call.
	g.Left(precCall, "(")

	g.ExpectConflict("_collection_elements", "parenthesized_expression")
	g.ExpectConflict("_primary_expression", "env_assignment", "env_prefix")
	// A statement that starts with "@$(" is Python: commands start with a
	// bare word.
	g.ExpectConflict("_primary_expression", "subprocess_command")
	g.ExpectConflict("_primary_expression", "captured_subprocess_object")
	return g
}

func defineStatements(g *gg.Grammar) {
	r := gg.Ref

	g.Rule("module", gg.Repeat(r("_statement")))
	g.Rule("_statement", gg.Choice(r("_simple_statements"), r("_compound_statement")))
	g.Rule("_simple_statements", gg.Seq(
		r("_simple_statement"),
		gg.Repeat(gg.Seq(";", r("_simple_statement"))),
		gg.Optional(";"),
		r("_newline"),
	))
	g.Rule("_simple_statement", gg.Choice(
		r("import_statement"),
		r("import_from_statement"),
		r("assert_statement"),
		r("expression_statement"),
		r("return_statement"),
		r("delete_statement"),
		r("raise_statement"),
		r("pass_statement"),
		r("break_statement"),
		r("continue_statement"),
		r("global_statement"),
		r("nonlocal_statement"),
		r("env_assignment"),
		r("env_deletion"),
		r("env_scoped_command"),
		r("bare_subprocess"),
		r("xontrib_statement"),
	))

	g.Rule("import_statement", gg.Seq("import", r("_import_list")))
	importName := gg.Field("name", gg.Choice(r("dotted_name"), r("aliased_import")))
	g.Rule("_import_list", gg.CommaSep1(importName))
	g.Rule("import_prefix", gg.Repeat1("."))
	g.Rule("relative_import", gg.Seq(r("import_prefix"), gg.Optional(r("dotted_name"))))
	g.Rule("import_from_statement", gg.Seq(
		"from",
		gg.Field("module_name", gg.Choice(r("relative_import"), r("dotted_name"))),
		"import",
		gg.Choice(
			r("wildcard_import"),
			r("_import_list"),
			gg.Seq("(", gg.CommaSep1(importName), gg.Optional(","), ")"),
		),
	))
	g.Rule("aliased_import", gg.Seq(gg.Field("name", r("dotted_name")), "as", gg.Field("alias", r("identifier"))))
	g.Rule("wildcard_import", "*")
	g.Rule("dotted_name", gg.Seq(r("identifier"), gg.Repeat(gg.Seq(".", r("identifier")))))

	g.Rule("assert_statement", gg.Seq("assert", gg.CommaSep1(r("_expression"))))
	g.Rule("expression_statement", gg.Choice(
		r("_expressions"),
		r("assignment"),
		r("augmented_assignment"),
		r("yield"),
	))
	g.Rule("assignment", gg.Seq(
		gg.Field("left", r("_expressions")),
		gg.Choice(
			gg.Seq("=", gg.Field("right", r("_right_hand_side"))),
			gg.Seq(":", gg.Field("type", r("type")), gg.Optional(gg.Seq("=", gg.Field("right", r("_right_hand_side"))))),
		),
	))
	g.Rule("augmented_assignment", gg.Seq(
		gg.Field("left", r("_expressions")),
		gg.Field("operator", gg.Choice("+=", "-=", "*=", "/=", "@=", "//=", "%=", "**=", ">>=", "<<=", "&=", "^=", "|=")),
		gg.Field("right", r("_right_hand_side")),
	))
	g.Rule("_right_hand_side", gg.Choice(r("_expressions"), r("assignment"), r("augmented_assignment"), r("yield")))

	g.Rule("return_statement", gg.Seq("return", gg.Optional(r("_expressions"))))
	g.Rule("delete_statement", gg.Seq("del", r("_expressions")))
	g.Rule("raise_statement", gg.Seq(
		"raise",
		gg.Optional(r("_expressions")),
		gg.Optional(gg.Seq("from", gg.Field("cause", r("_expression")))),
	))
	g.Rule("pass_statement", "pass")
	g.Rule("break_statement", "break")
	g.Rule("continue_statement", "continue")
	g.Rule("global_statement", gg.Seq("global", gg.CommaSep1(r("identifier"))))
	g.Rule("nonlocal_statement", gg.Seq("nonlocal", gg.CommaSep1(r("identifier"))))
}

func defineCompound(g *gg.Grammar) {
	r := gg.Ref

	g.Rule("_compound_statement", gg.Choice(
		r("if_statement"),
		r("for_statement"),
		r("while_statement"),
		r("try_statement"),
		r("with_statement"),
		r("function_definition"),
		r("class_definition"),
		r("decorated_definition"),
		r("block_macro_statement"),
	))

	// A block is either an indented suite or the simple statements that
	// follow the colon on the header line.
	g.Rule("block", gg.Choice(
		gg.Seq(r("_newline"), r("_indent"), gg.Repeat1(r("_statement")), r("_dedent")),
		r("_simple_statements"),
	))

	g.Rule("if_statement", gg.Seq(
		"if",
		gg.Field("condition", r("_expression")),
		":",
		gg.Field("consequence", r("block")),
		gg.Repeat(gg.Field("alternative", r("elif_clause"))),
		gg.Optional(gg.Field("alternative", r("else_clause"))),
	))
	g.Rule("elif_clause", gg.Seq(
		"elif",
		gg.Field("condition", r("_expression")),
		":",
		gg.Field("consequence", r("block")),
	))
	g.Rule("else_clause", gg.Seq("else", ":", gg.Field("body", r("block"))))

	g.Rule("for_statement", gg.Seq(
		gg.Optional("async"),
		"for",
		gg.Field("left", r("_targets")),
		"in",
		gg.Field("right", r("_expressions")),
		":",
		gg.Field("body", r("block")),
		gg.Optional(gg.Field("alternative", r("else_clause"))),
	))
	g.Rule("while_statement", gg.Seq(
		"while",
		gg.Field("condition", r("_expression")),
		":",
		gg.Field("body", r("block")),
		gg.Optional(gg.Field("alternative", r("else_clause"))),
	))
	g.Rule("try_statement", gg.Seq(
		"try",
		":",
		gg.Field("body", r("block")),
		gg.Choice(
			gg.Seq(
				gg.Repeat1(r("except_clause")),
				gg.Optional(r("else_clause")),
				gg.Optional(r("finally_clause")),
			),
			r("finally_clause"),
		),
	))
	g.Rule("except_clause", gg.Seq(
		"except",
		gg.Optional(gg.Seq(
			gg.Field("value", r("_expression")),
			gg.Optional(gg.Seq("as", gg.Field("alias", r("identifier")))),
		)),
		":",
		gg.Field("body", r("block")),
	))
	g.Rule("finally_clause", gg.Seq("finally", ":", gg.Field("body", r("block"))))

	g.Rule("with_statement", gg.Seq(
		gg.Optional("async"),
		"with",
		r("with_clause"),
		":",
		gg.Field("body", r("block")),
	))
	g.Rule("with_clause", gg.CommaSep1(r("with_item")))
	g.Rule("with_item", gg.Seq(
		gg.Field("value", r("_expression")),
		gg.Optional(gg.Seq("as", gg.Field("alias", r("_target")))),
	))

	g.Rule("function_definition", gg.Seq(
		gg.Optional("async"),
		"def",
		gg.Field("name", r("identifier")),
		gg.Field("parameters", r("parameters")),
		gg.Optional(gg.Seq("->", gg.Field("return_type", r("type")))),
		":",
		gg.Field("body", r("block")),
	))
	g.Rule("parameters", gg.Seq("(", gg.Optional(gg.Seq(gg.CommaSep1(r("_parameter")), gg.Optional(","))), ")"))
	g.Rule("_parameter", gg.Choice(
		r("identifier"),
		r("typed_parameter"),
		r("default_parameter"),
		r("typed_default_parameter"),
		r("list_splat_pattern"),
		r("dictionary_splat_pattern"),
		r("keyword_separator"),
		r("positional_separator"),
	))
	g.Rule("lambda_parameters", gg.Seq(gg.CommaSep1(r("_lambda_parameter")), gg.Optional(",")))
	g.Rule("_lambda_parameter", gg.Choice(
		r("identifier"),
		r("default_parameter"),
		r("list_splat_pattern"),
		r("dictionary_splat_pattern"),
		r("keyword_separator"),
		r("positional_separator"),
	))
	g.Rule("typed_parameter", gg.Seq(
		gg.Choice(r("identifier"), r("list_splat_pattern"), r("dictionary_splat_pattern")),
		":",
		gg.Field("type", r("type")),
	))
	g.Rule("default_parameter", gg.Seq(gg.Field("name", r("identifier")), "=", gg.Field("value", r("_expression"))))
	g.Rule("typed_default_parameter", gg.Seq(
		gg.Field("name", r("identifier")),
		":",
		gg.Field("type", r("type")),
		"=",
		gg.Field("value", r("_expression")),
	))
	g.Rule("list_splat_pattern", gg.Seq("*", r("identifier")))
	g.Rule("dictionary_splat_pattern", gg.Seq("**", r("identifier")))
	g.Rule("keyword_separator", "*")
	g.Rule("positional_separator", "/")

	g.Rule("class_definition", gg.Seq(
		"class",
		gg.Field("name", r("identifier")),
		gg.Optional(gg.Field("superclasses", r("argument_list"))),
		":",
		gg.Field("body", r("block")),
	))
	g.Rule("decorated_definition", gg.Seq(
		gg.Repeat1(r("decorator")),
		gg.Field("definition", gg.Choice(r("class_definition"), r("function_definition"))),
	))
	g.Rule("decorator", gg.Seq("@", r("_expression"), r("_newline")))
}

func binaryOperator(level int, op string, right bool) gg.Rule {
	body := gg.Seq(
		gg.Field("left", gg.Ref("_primary_expression")),
		gg.Field("operator", op),
		gg.Field("right", gg.Ref("_primary_expression")),
	)
	if right {
		return gg.PrecRight(level, body)
	}
	return gg.PrecLeft(level, body)
}

func boolean(level int, op string) gg.Rule {
	return gg.PrecLeft(level, gg.Seq(
		gg.Field("left", gg.Ref("_expression")),
		gg.Field("operator", op),
		gg.Field("right", gg.Ref("_expression")),
	))
}

func defineExpressions(g *gg.Grammar) {
	r := gg.Ref

	g.Rule("_expressions", gg.Choice(r("_expression"), r("expression_list")))
	g.Rule("expression_list", gg.Seq(
		r("_expression"),
		gg.Choice(",", gg.Seq(gg.Repeat1(gg.Seq(",", r("_expression"))), gg.Optional(","))),
	))
	g.Rule("_targets", gg.Choice(r("_target"), r("pattern_list")))
	g.Rule("_target", gg.Choice(r("_primary_expression"), r("list_splat_pattern")))
	g.Rule("pattern_list", gg.Seq(
		r("_target"),
		gg.Choice(",", gg.Seq(gg.Repeat1(gg.Seq(",", r("_target"))), gg.Optional(","))),
	))

	g.Rule("_expression", gg.Choice(
		r("comparison_operator"),
		r("not_operator"),
		r("boolean_operator"),
		r("lambda"),
		r("_primary_expression"),
		r("conditional_expression"),
		r("named_expression"),
		r("help_expression"),
		r("super_help_expression"),
	))
	g.Rule("_primary_expression", gg.Choice(
		r("await"),
		r("binary_operator"),
		r("identifier"),
		r("string"),
		r("concatenated_string"),
		r("integer"),
		r("float"),
		r("true"),
		r("false"),
		r("none"),
		r("ellipsis"),
		r("unary_operator"),
		r("attribute"),
		r("subscript"),
		r("call"),
		r("macro_call"),
		r("list"),
		r("list_comprehension"),
		r("dictionary"),
		r("dictionary_comprehension"),
		r("set"),
		r("set_comprehension"),
		r("tuple"),
		r("parenthesized_expression"),
		r("generator_expression"),
		r("env_variable"),
		r("env_variable_braced"),
		r("captured_subprocess"),
		r("captured_subprocess_object"),
		r("uncaptured_subprocess"),
		r("uncaptured_subprocess_object"),
		r("tokenized_substitution"),
		r("at_object"),
		r("path_string"),
		r("regex_glob"),
		r("regex_path_glob"),
		r("glob_pattern"),
		r("glob_path"),
		r("formatted_glob"),
		r("custom_function_glob"),
	))

	g.Rule("true", "True")
	g.Rule("false", "False")
	g.Rule("none", "None")

	g.Rule("binary_operator", gg.Choice(
		binaryOperator(precPlus, "+", false),
		binaryOperator(precPlus, "-", false),
		binaryOperator(precTimes, "*", false),
		binaryOperator(precTimes, "@", false),
		binaryOperator(precTimes, "/", false),
		binaryOperator(precTimes, "%", false),
		binaryOperator(precTimes, "//", false),
		binaryOperator(precPower, "**", true),
		binaryOperator(precBitOr, "|", false),
		binaryOperator(precBitAnd, "&", false),
		binaryOperator(precBitXor, "^", false),
		binaryOperator(precShift, "<<", false),
		binaryOperator(precShift, ">>", false),
	))
	g.Rule("unary_operator", gg.Prec(precUnary, gg.Seq(
		gg.Field("operator", gg.Choice("+", "-", "~")),
		gg.Field("argument", r("_primary_expression")),
	)))
	g.Rule("await", gg.Prec(precUnary, gg.Seq("await", r("_primary_expression"))))
	g.Rule("not_operator", gg.Prec(precNot, gg.Seq("not", gg.Field("argument", r("_expression")))))
	g.Rule("boolean_operator", gg.Choice(
		boolean(precAnd, "and"),
		boolean(precOr, "or"),
		boolean(precAnd, "&&"),
		boolean(precOr, "||"),
	))
	g.Rule("comparison_operator", gg.PrecLeft(precCompare, gg.Seq(
		r("_primary_expression"),
		gg.Repeat1(gg.Seq(
			gg.Field("operators", gg.Choice("<", "<=", "==", "!=", ">=", ">", "in", gg.Seq("not", "in"), "is", gg.Seq("is", "not"))),
			r("_primary_expression"),
		)),
	)))
	g.Rule("lambda", gg.Prec(precLambda, gg.Seq(
		"lambda",
		gg.Optional(gg.Field("parameters", r("lambda_parameters"))),
		":",
		gg.Field("body", r("_expression")),
	)))
	g.Rule("conditional_expression", gg.PrecRight(precConditional, gg.Seq(
		r("_expression"), "if", r("_expression"), "else", r("_expression"),
	)))
	g.Rule("named_expression", gg.PrecRight(precConditional, gg.Seq(
		gg.Field("name", r("identifier")),
		":=",
		gg.Field("value", r("_expression")),
	)))
	g.Rule("help_expression", gg.Seq(r("_primary_expression"), "?"))
	g.Rule("super_help_expression", gg.Seq(r("_primary_expression"), "??"))
	g.Rule("yield", gg.PrecRight(0, gg.Seq(
		"yield",
		gg.Choice(gg.Seq("from", r("_expression")), gg.Optional(r("_expressions"))),
	)))

	g.Rule("attribute", gg.Prec(precCall, gg.Seq(
		gg.Field("object", r("_primary_expression")),
		".",
		gg.Field("attribute", r("identifier")),
	)))
	g.Rule("subscript", gg.Prec(precCall, gg.Seq(
		gg.Field("value", r("_primary_expression")),
		"[",
		gg.CommaSep1(gg.Field("subscript", gg.Choice(r("_expression"), r("slice")))),
		gg.Optional(","),
		"]",
	)))
	g.Rule("slice", gg.Seq(
		gg.Optional(r("_expression")),
		":",
		gg.Optional(r("_expression")),
		gg.Optional(gg.Seq(":", gg.Optional(r("_expression")))),
	))
	g.Rule("call", gg.Prec(precCall, gg.Seq(
		gg.Field("function", r("_primary_expression")),
		gg.Field("arguments", gg.Choice(r("generator_expression"), r("argument_list"))),
	)))
	g.Rule("macro_call", gg.Prec(precCall, gg.Seq(
		gg.Field("function", r("_primary_expression")),
		"!(",
		gg.Optional(gg.Seq(gg.CommaSep1(gg.Field("argument", r("macro_argument"))), gg.Optional(","))),
		")",
	)))
	g.Rule("argument_list", gg.Seq(
		"(",
		gg.Optional(gg.Seq(gg.CommaSep1(r("_argument")), gg.Optional(","))),
		")",
	))
	g.Rule("_argument", gg.Choice(
		r("_expression"),
		r("list_splat"),
		r("dictionary_splat"),
		r("keyword_argument"),
	))
	g.Rule("keyword_argument", gg.Seq(
		gg.Field("name", r("identifier")),
		"=",
		gg.Field("value", r("_expression")),
	))
	g.Rule("list_splat", gg.Seq("*", r("_expression")))
	g.Rule("dictionary_splat", gg.Seq("**", r("_expression")))
	g.Rule("type", r("_expression"))
}

func defineCollections(g *gg.Grammar) {
	r := gg.Ref

	g.Rule("_collection_elements", gg.Seq(
		gg.CommaSep1(gg.Choice(r("_expression"), r("list_splat"))),
		gg.Optional(","),
	))
	g.Rule("list", gg.Seq("[", gg.Optional(r("_collection_elements")), "]"))
	g.Rule("set", gg.Seq("{", r("_collection_elements"), "}"))
	g.Rule("tuple", gg.Seq("(", gg.Optional(r("_collection_elements")), ")"))
	g.Rule("parenthesized_expression", gg.Prec(precParenthesis, gg.Seq(
		"(",
		gg.Choice(r("_expression"), r("yield"), r("_subprocess")),
		")",
	)))
	g.Rule("dictionary", gg.Seq(
		"{",
		gg.Optional(gg.Seq(gg.CommaSep1(gg.Choice(r("pair"), r("dictionary_splat"))), gg.Optional(","))),
		"}",
	))
	g.Rule("pair", gg.Seq(gg.Field("key", r("_expression")), ":", gg.Field("value", r("_expression"))))

	g.Rule("list_comprehension", gg.Seq("[", gg.Field("body", r("_expression")), r("_comprehension_clauses"), "]"))
	g.Rule("set_comprehension", gg.Seq("{", gg.Field("body", r("_expression")), r("_comprehension_clauses"), "}"))
	g.Rule("dictionary_comprehension", gg.Seq("{", gg.Field("body", r("pair")), r("_comprehension_clauses"), "}"))
	g.Rule("generator_expression", gg.Seq("(", gg.Field("body", r("_expression")), r("_comprehension_clauses"), ")"))
	g.Rule("_comprehension_clauses", gg.Seq(
		r("for_in_clause"),
		gg.Repeat(gg.Choice(r("for_in_clause"), r("if_clause"))),
	))
	g.Rule("for_in_clause", gg.Prec(precComprehend, gg.Seq(
		gg.Optional("async"),
		"for",
		gg.Field("left", r("_targets")),
		"in",
		gg.Field("right", r("_expression")),
	)))
	g.Rule("if_clause", gg.Prec(precComprehend, gg.Seq("if", r("_expression"))))
}

func defineStrings(g *gg.Grammar) {
	r := gg.Ref

	g.Rule("string", gg.Seq(r("string_start"), gg.Repeat(r("_string_part")), r("string_end")))
	g.Rule("path_string", gg.Seq(r("path_string_start"), gg.Repeat(r("_string_part")), r("string_end")))
	g.Rule("_string_part", gg.Choice(r("string_content"), r("escape_sequence"), r("interpolation")))
	g.Rule("concatenated_string", gg.Seq(r("string"), gg.Repeat1(r("string"))))
	g.Rule("interpolation", gg.Seq(
		"{",
		gg.Field("expression", r("_expression")),
		gg.Optional("="),
		gg.Optional(gg.Field("type_conversion", r("type_conversion"))),
		gg.Optional(gg.Field("format_specifier", r("format_specifier"))),
		"}",
	))
	g.Rule("format_specifier", gg.Seq(":", gg.Repeat(gg.Choice(r("_format_text"), r("interpolation")))))
}

func defineXonsh(g *gg.Grammar) {
	r := gg.Ref

	g.Rule("env_variable_braced", gg.Seq("${", r("_expression"), "}"))
	g.Rule("captured_subprocess", gg.Seq("$(", r("_subprocess"), ")"))
	g.Rule("captured_subprocess_object", gg.Seq("!(", r("_subprocess"), ")"))
	g.Rule("uncaptured_subprocess", gg.Seq("$[", r("_subprocess"), "]"))
	g.Rule("uncaptured_subprocess_object", gg.Seq("![", r("_subprocess"), "]"))
	g.Rule("python_evaluation", gg.Seq("@(", r("_expressions"), ")"))
	g.Rule("tokenized_substitution", gg.Seq("@$(", r("_subprocess"), ")"))
	g.Rule("at_object", gg.Seq("@.", gg.Field("attribute", r("identifier"))))

	// "with! ctx:" hands its block to the context manager unevaluated.
	g.Rule("block_macro_statement", gg.Seq(
		"with",
		"!",
		r("with_clause"),
		":",
		gg.Field("body", r("block")),
	))
	g.Rule("xontrib_statement", gg.Seq("xontrib", "load", gg.Repeat1(gg.Field("name", r("dotted_name")))))

	g.Rule("env_assignment", gg.Seq(
		gg.Field("name", r("env_variable")),
		"=",
		gg.Field("value", r("_right_hand_side")),
	))
	g.Rule("env_deletion", gg.Prec(1, gg.Seq("del", gg.Field("name", r("env_variable")))))
	g.Rule("env_prefix", gg.Seq(
		gg.Field("name", r("env_variable")),
		"=",
		gg.Field("value", r("word")),
	))
	g.Rule("_env_prefixes", gg.Repeat1(r("env_prefix")))
	g.Rule("env_scoped_command", gg.Seq(r("_env_prefixes"), r("_subprocess")))

	g.Rule("bare_subprocess", r("_subprocess"))
	g.Rule("_subprocess", gg.Choice(r("_subprocess_body"), r("background_command")))
	g.Rule("background_command", gg.Seq(r("_subprocess_body"), "&"))
	g.Rule("_subprocess_body", gg.Choice(r("_subprocess_unit"), r("subprocess_logical")))
	g.Rule("_subprocess_unit", gg.Choice(r("subprocess_command"), r("subprocess_pipeline"), r("subprocess_macro")))
	g.Rule("subprocess_pipeline", gg.Seq(
		r("subprocess_command"),
		gg.Repeat1(gg.Seq(r("pipe_operator"), r("subprocess_command"))),
	))
	g.Rule("subprocess_logical", gg.Seq(
		r("_subprocess_unit"),
		gg.Repeat1(gg.Seq(r("logical_operator"), r("_subprocess_unit"))),
	))
	g.Rule("subprocess_command", gg.Seq(
		gg.Repeat(r("subprocess_modifier")),
		gg.Choice(r("word"), r("python_evaluation"), r("tokenized_substitution")),
		gg.Repeat(gg.Choice(r("_subprocess_argument"), r("subprocess_redirect"))),
	))
	// "cmd! rest of line" passes the rest of the line as one raw argument.
	g.Rule("subprocess_macro", gg.Seq(
		gg.Field("command", r("word")),
		"!",
		gg.Optional(gg.Field("argument", r("macro_argument"))),
	))
	g.Rule("_subprocess_argument", gg.Choice(
		r("word"),
		r("string"),
		r("path_string"),
		r("env_variable"),
		r("env_variable_braced"),
		r("captured_subprocess"),
		r("captured_subprocess_object"),
		r("uncaptured_subprocess"),
		r("uncaptured_subprocess_object"),
		r("python_evaluation"),
		r("tokenized_substitution"),
		r("brace_expansion"),
		r("regex_glob"),
		r("regex_path_glob"),
		r("glob_pattern"),
		r("glob_path"),
		r("formatted_glob"),
		r("custom_function_glob"),
	))
	g.Rule("subprocess_redirect", gg.Choice(
		gg.Seq(r("redirect_operator"), gg.Field("target", r("_subprocess_argument"))),
		r("stream_merge_operator"),
	))
}
