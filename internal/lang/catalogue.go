package lang

// Catalogue is the process-lifetime, read-only table of known language
// profiles. It is populated once by init from the literal tables below;
// nothing here is generated.
var Catalogue []Profile

func init() {
	Catalogue = append(Catalogue, cFamily()...)
	Catalogue = append(Catalogue, scripting()...)
	Catalogue = append(Catalogue, pragmaAndMisc()...)
	Catalogue = append(Catalogue, dataAndMarkup()...)
	Catalogue = append(Catalogue, buildAndOther()...)
}

var cDecisionTokens = []string{
	"if", "for", "while", "case", "catch", "&&", "||", "?",
}

var cKeywords = []string{
	"if", "else", "for", "while", "do", "switch", "case", "default",
	"break", "continue", "return", "goto", "sizeof", "struct", "union",
	"enum", "typedef", "static", "const", "volatile", "extern", "void",
	"int", "char", "float", "double", "long", "short", "unsigned", "signed",
}

var cPunctuation = []string{
	"<<=", ">>=", "...", "->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=",
	"&&", "||", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "::",
}

func cFamily() []Profile {
	return []Profile{
		{
			Name: "C", ID: "c",
			Extensions:         []string{".c"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords:           cKeywords,
			DecisionTokens:     cDecisionTokens,
			Punctuation:        cPunctuation,
		},
		{
			Name: "C++", ID: "cpp",
			Extensions: []string{
				".cpp", ".cxx", ".cc", ".c++", ".hpp", ".hxx", ".hh", ".h++",
				".ipp", ".inl", ".tcc", ".tpp", ".h",
			},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: append(append([]string{}, cKeywords...),
				"class", "template", "namespace", "public", "private", "protected",
				"virtual", "new", "delete", "try", "throw", "using", "friend"),
			DecisionTokens: cDecisionTokens,
			Punctuation:    append(append([]string{}, cPunctuation...), "::"),
		},
		{
			Name: "C#", ID: "csharp",
			Extensions:         []string{".cs", ".csx"},
			LineComments:       []string{"///", "//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "foreach", "while", "do", "switch", "case",
				"default", "break", "continue", "return", "class", "struct",
				"interface", "enum", "namespace", "using", "public", "private",
				"protected", "internal", "static", "readonly", "const", "new",
				"try", "catch", "finally", "throw", "async", "await", "var",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "foreach", "??"),
			Punctuation:    append(append([]string{}, cPunctuation...), "??", "?."),
		},
		{
			Name: "Java", ID: "java",
			Extensions:         []string{".java"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "while", "do", "switch", "case", "default",
				"break", "continue", "return", "class", "interface", "enum",
				"extends", "implements", "package", "import", "public", "private",
				"protected", "static", "final", "abstract", "synchronized", "new",
				"try", "catch", "finally", "throw", "throws",
			},
			DecisionTokens: cDecisionTokens,
			Punctuation:    cPunctuation,
		},
		{
			Name: "Objective-C", ID: "objc",
			Extensions:         []string{".m"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: append(append([]string{}, cKeywords...),
				"interface", "implementation", "property", "synthesize", "self",
				"nil", "id", "nonatomic", "strong", "weak", "retain"),
			DecisionTokens: cDecisionTokens,
			Punctuation:    cPunctuation,
		},
		{
			Name: "Objective-C++", ID: "objcpp",
			Extensions:         []string{".mm"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: false,
			Punctuation:        cPunctuation,
		},
		{
			Name: "Go", ID: "go",
			Extensions:         []string{".go"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "switch", "case", "default", "select",
				"break", "continue", "return", "goto", "fallthrough", "func",
				"type", "struct", "interface", "map", "chan", "go", "defer",
				"package", "import", "const", "var", "range",
			},
			DecisionTokens: cDecisionTokens,
			Punctuation: []string{
				":=", "<-", "...", "->", "++", "--", "<<", ">>", "<=", ">=",
				"==", "!=", "&&", "||", "+=", "-=", "*=", "/=", "%=", "&^",
			},
		},
		{
			Name: "Rust", ID: "rust",
			Extensions:         []string{".rs"},
			LineComments:       []string{"///", "//!", "//"},
			Block:              BlockComment{Open: "/*", Close: "*/", Nested: true},
			Strings:            StringRule{DoubleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "match", "for", "while", "loop", "break",
				"continue", "return", "fn", "let", "mut", "struct", "enum",
				"trait", "impl", "pub", "mod", "use", "crate", "self", "Self",
				"unsafe", "async", "await", "move", "where", "as", "dyn",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "match", "?"),
			Punctuation: []string{
				"->", "=>", "::", "..=", "...", "&&", "||", "==", "!=", "<=",
				">=", "+=", "-=", "*=", "/=", "%=", "<<", ">>",
			},
		},
		{
			Name: "JavaScript", ID: "javascript",
			Extensions:         []string{".js", ".mjs", ".cjs", ".jsx", ".es6", ".es", ".jsm"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "while", "do", "switch", "case", "default",
				"break", "continue", "return", "function", "var", "let", "const",
				"class", "extends", "new", "try", "catch", "finally", "throw",
				"async", "await", "yield", "typeof", "instanceof", "in", "of",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "??"),
			Punctuation: append(append([]string{}, cPunctuation...),
				"===", "!==", "=>", "**", "??", "?."),
		},
		{
			Name: "TypeScript", ID: "typescript",
			Extensions:         []string{".ts", ".mts", ".cts"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "while", "do", "switch", "case", "default",
				"break", "continue", "return", "function", "var", "let", "const",
				"class", "extends", "implements", "interface", "type", "enum",
				"new", "try", "catch", "finally", "throw", "async", "await",
				"yield", "typeof", "instanceof", "in", "of", "as", "namespace",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "??"),
			Punctuation: append(append([]string{}, cPunctuation...),
				"===", "!==", "=>", "**", "??", "?.", "::"),
		},
		{
			Name: "TSX", ID: "tsx",
			Extensions:   []string{".tsx"},
			LineComments: []string{"//"},
			Block:        BlockComment{Open: "/*", Close: "*/"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "Kotlin", ID: "kotlin",
			Extensions:         []string{".kt", ".kts"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/", Nested: true},
			Strings:            StringRule{DoubleQuote: true, TripleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "while", "do", "when", "break", "continue",
				"return", "fun", "val", "var", "class", "object", "interface",
				"package", "import", "is", "in", "as", "try", "catch", "finally",
				"throw", "suspend", "companion", "sealed", "data",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "when", "?:"),
			Punctuation:    append(append([]string{}, cPunctuation...), "?:", "::"),
		},
		{
			Name: "Swift", ID: "swift",
			Extensions:         []string{".swift"},
			LineComments:       []string{"//"},
			Block:              BlockComment{Open: "/*", Close: "*/", Nested: true},
			Strings:            StringRule{DoubleQuote: true, TripleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "while", "repeat", "switch", "case",
				"default", "break", "continue", "return", "func", "let", "var",
				"class", "struct", "enum", "protocol", "extension", "import",
				"guard", "try", "catch", "throw", "defer", "as", "is",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "guard", "??"),
			Punctuation:    append(append([]string{}, cPunctuation...), "??"),
		},
		{
			Name: "Dart", ID: "dart",
			Extensions:         []string{".dart"},
			LineComments:       []string{"///", "//"},
			Block:              BlockComment{Open: "/*", Close: "*/", Nested: true},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true, TripleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "for", "while", "do", "switch", "case", "default",
				"break", "continue", "return", "class", "extends", "implements",
				"import", "library", "new", "try", "catch", "finally", "throw",
				"async", "await", "yield", "const", "final", "var",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "??"),
			Punctuation:    append(append([]string{}, cPunctuation...), "??", "?.", "=>"),
		},
		{
			Name: "Scala", ID: "scala",
			Extensions:   []string{".scala", ".sc"},
			LineComments: []string{"//"},
			Block:        BlockComment{Open: "/*", Close: "*/", Nested: true},
			Strings:      StringRule{DoubleQuote: true, TripleQuote: true},
		},
		{
			Name: "PHP", ID: "php",
			Extensions:         []string{".php", ".php3", ".php4", ".php5", ".php7", ".phps", ".phtml"},
			LineComments:       []string{"//", "#"},
			Block:              BlockComment{Open: "/*", Close: "*/"},
			PragmaPair:         Pragma{Open: "<?php", Close: "?>"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "else", "elseif", "for", "foreach", "while", "do", "switch",
				"case", "default", "break", "continue", "return", "function",
				"class", "interface", "extends", "implements", "namespace", "use",
				"new", "try", "catch", "finally", "throw", "public", "private",
				"protected", "static", "const", "var",
			},
			DecisionTokens: append(append([]string{}, cDecisionTokens...), "foreach", "elseif", "??"),
			Punctuation:    append(append([]string{}, cPunctuation...), "->", "=>", "??", "<>"),
		},
	}
}

func scripting() []Profile {
	return []Profile{
		{
			Name: "Python", ID: "python",
			Extensions:         []string{".py", ".pyw", ".pyi", ".pyx", ".pxd"},
			Interpreters:       []string{"python", "python2", "python3"},
			LineComments:       []string{"#"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true, TripleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "elif", "else", "for", "while", "try", "except", "finally",
				"with", "def", "class", "return", "yield", "import", "from",
				"as", "pass", "break", "continue", "lambda", "global", "nonlocal",
				"and", "or", "not", "in", "is", "raise", "assert", "async", "await",
			},
			DecisionTokens: []string{"if", "elif", "for", "while", "except", "and", "or"},
			Punctuation:    []string{"**=", "//=", "->", "==", "!=", "<=", ">=", "**", "//", "+=", "-=", "*=", "/=", "%=", ":="},
		},
		{
			Name: "Ruby", ID: "ruby",
			Extensions:         []string{".rb", ".rake", ".gemspec", ".rbw", ".ru", ".podspec", ".thor", ".jbuilder"},
			Filenames:          []string{"Rakefile", "Gemfile"},
			Interpreters:       []string{"ruby"},
			LineComments:       []string{"#"},
			Block:              BlockComment{Open: "=begin", Close: "=end"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "elsif", "else", "unless", "for", "while", "until", "case",
				"when", "def", "class", "module", "return", "yield", "require",
				"begin", "rescue", "ensure", "raise", "do", "end", "and", "or",
				"not", "nil", "self",
			},
			DecisionTokens: []string{"if", "elsif", "unless", "while", "until", "when", "rescue", "&&", "||"},
			Punctuation:    []string{"<=>", "===", "=~", "..", "...", "&&", "||", "==", "!=", "<=", ">=", "=>", "->"},
		},
		{
			Name: "Perl", ID: "perl",
			Extensions:   []string{".pl", ".pm", ".pod", ".t"},
			Interpreters: []string{"perl"},
			LineComments: []string{"#"},
			Block:        BlockComment{Open: "=pod", Close: "=cut"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "Bash", ID: "bash",
			Extensions:         []string{".bash"},
			Interpreters:       []string{"bash"},
			LineComments:       []string{"#"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "then", "elif", "else", "fi", "for", "while", "until", "do",
				"done", "case", "esac", "function", "return", "break", "continue",
				"local", "export", "in",
			},
			DecisionTokens: []string{"if", "elif", "while", "until", "case", "&&", "||"},
			Punctuation:    []string{"&&", "||", "==", "!=", "<=", ">=", "=~", "[[", "]]"},
		},
		{
			Name: "Zsh", ID: "zsh",
			Extensions:         []string{".zsh"},
			Interpreters:       []string{"zsh"},
			LineComments:       []string{"#"},
			Strings:            StringRule{DoubleQuote: true, SingleQuote: true},
			HalsteadCyclomatic: true,
			Keywords: []string{
				"if", "then", "elif", "else", "fi", "for", "while", "until", "do",
				"done", "case", "esac", "function", "return", "break", "continue",
				"local", "export", "in",
			},
			DecisionTokens: []string{"if", "elif", "while", "until", "case", "&&", "||"},
			Punctuation:    []string{"&&", "||", "==", "!=", "<=", ">=", "=~"},
		},
		{
			Name: "Shell", ID: "shell",
			Extensions:   []string{".sh", ".ksh", ".csh", ".tcsh", ".fish"},
			Interpreters: []string{"sh", "ksh", "csh", "tcsh", "fish"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "PowerShell", ID: "powershell",
			Extensions:   []string{".ps1", ".psm1", ".psd1"},
			LineComments: []string{"#"},
			Block:        BlockComment{Open: "<#", Close: "#>"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "Lua", ID: "lua",
			Extensions:   []string{".lua"},
			Interpreters: []string{"lua"},
			LineComments: []string{"--"},
			Block:        BlockComment{Open: "--[[", Close: "]]"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
	}
}

func pragmaAndMisc() []Profile {
	return []Profile{
		{
			Name: "Haskell", ID: "haskell",
			Extensions:           []string{".hs", ".lhs"},
			LineComments:         []string{"--"},
			LineCommentNotBefore: map[string]string{"--": ">"},
			Block:                BlockComment{Open: "{-", Close: "-}", Nested: true},
			PragmaPair:           Pragma{Open: "{-#", Close: "#-}"},
			Strings:              StringRule{DoubleQuote: true},
		},
		{
			Name: "R", ID: "r",
			Extensions:   []string{".R", ".r"},
			Interpreters: []string{"Rscript"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "RMarkdown", ID: "rmarkdown",
			Extensions:   []string{".Rmd", ".rmd"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "Clojure", ID: "clojure",
			Extensions:   []string{".clj", ".cljc", ".edn"},
			LineComments: []string{";;", ";"},
			Strings:      StringRule{DoubleQuote: true},
		},
		{
			Name: "ClojureScript", ID: "clojurescript",
			Extensions:   []string{".cljs"},
			LineComments: []string{";;", ";"},
			Strings:      StringRule{DoubleQuote: true},
		},
		{
			Name: "Erlang", ID: "erlang",
			Extensions:   []string{".erl", ".hrl"},
			LineComments: []string{"%"},
			Strings:      StringRule{DoubleQuote: true},
		},
		{
			Name: "Elixir", ID: "elixir",
			Extensions:   []string{".ex", ".exs"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true, TripleQuote: true},
		},
		{
			Name: "F#", ID: "fsharp",
			Extensions:   []string{".fs", ".fsi", ".fsx"},
			LineComments: []string{"//"},
			Block:        BlockComment{Open: "(*", Close: "*)", Nested: true},
			Strings:      StringRule{DoubleQuote: true, TripleQuote: true},
		},
		{
			Name: "OCaml", ID: "ocaml",
			Extensions: []string{".ml", ".mli", ".mll", ".mly"},
			Block:      BlockComment{Open: "(*", Close: "*)", Nested: true},
			Strings:    StringRule{DoubleQuote: true},
		},
		{
			Name: "Zig", ID: "zig",
			Extensions:   []string{".zig"},
			LineComments: []string{"//"},
			Strings:      StringRule{DoubleQuote: true},
		},
		{
			Name: "Nim", ID: "nim",
			Extensions:   []string{".nim", ".nims"},
			LineComments: []string{"#"},
			Block:        BlockComment{Open: "#[", Close: "]#", Nested: true},
			Strings:      StringRule{DoubleQuote: true, TripleQuote: true},
		},
		{
			Name: "Julia", ID: "julia",
			Extensions:   []string{".jl"},
			LineComments: []string{"#"},
			Block:        BlockComment{Open: "#=", Close: "=#", Nested: true},
			Strings:      StringRule{DoubleQuote: true, TripleQuote: true},
		},
		{
			Name: "Crystal", ID: "crystal",
			Extensions:   []string{".cr"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true},
		},
		{
			Name: "V", ID: "v",
			Extensions:   []string{".v"},
			LineComments: []string{"//"},
			Block:        BlockComment{Open: "/*", Close: "*/", Nested: true},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "Groovy", ID: "groovy",
			Extensions:   []string{".groovy", ".gradle", ".gvy"},
			LineComments: []string{"//"},
			Block:        BlockComment{Open: "/*", Close: "*/"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true, TripleQuote: true},
		},
		{
			Name: "Assembly", ID: "asm",
			Extensions:   []string{".asm", ".s", ".S"},
			LineComments: []string{";", "#"},
			Strings:      StringRule{DoubleQuote: true},
		},
	}
}

func dataAndMarkup() []Profile {
	return []Profile{
		{Name: "JSON", ID: "json", Extensions: []string{".json"}, Strings: StringRule{DoubleQuote: true}},
		{Name: "JSON5", ID: "json5", Extensions: []string{".json5"}, LineComments: []string{"//"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "YAML", ID: "yaml", Extensions: []string{".yaml", ".yml"}, LineComments: []string{"#"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "TOML", ID: "toml", Extensions: []string{".toml"}, LineComments: []string{"#"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true, TripleQuote: true}},
		{Name: "XML", ID: "xml", Extensions: []string{".xml"}, Block: BlockComment{Open: "<!--", Close: "-->"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "HTML", ID: "html", Extensions: []string{".html", ".htm", ".xhtml"}, Block: BlockComment{Open: "<!--", Close: "-->"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "CSS", ID: "css", Extensions: []string{".css"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "SCSS", ID: "scss", Extensions: []string{".scss"}, LineComments: []string{"//"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Sass", ID: "sass", Extensions: []string{".sass"}, LineComments: []string{"//"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Less", ID: "less", Extensions: []string{".less"}, LineComments: []string{"//"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Stylus", ID: "stylus", Extensions: []string{".styl"}, LineComments: []string{"//"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Vue", ID: "vue", Extensions: []string{".vue"}, Block: BlockComment{Open: "<!--", Close: "-->"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Svelte", ID: "svelte", Extensions: []string{".svelte"}, Block: BlockComment{Open: "<!--", Close: "-->"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Markdown", ID: "markdown", Extensions: []string{".md", ".markdown"}, Strings: StringRule{}},
		{Name: "reStructuredText", ID: "rst", Extensions: []string{".rst"}, Strings: StringRule{}},
		{Name: "TeX", ID: "tex", Extensions: []string{".tex", ".latex"}, LineComments: []string{"%"}, Strings: StringRule{}},
		{Name: "AsciiDoc", ID: "asciidoc", Extensions: []string{".adoc", ".asciidoc"}, Strings: StringRule{}},
		{Name: "SQL", ID: "sql", Extensions: []string{".sql", ".psql", ".mysql", ".pgsql"}, LineComments: []string{"--"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{SingleQuote: true}},
		{Name: "GraphQL", ID: "graphql", Extensions: []string{".graphql", ".gql"}, LineComments: []string{"#"}, Strings: StringRule{DoubleQuote: true, TripleQuote: true}},
		{Name: "Protocol Buffer", ID: "protobuf", Extensions: []string{".proto"}, LineComments: []string{"//"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
		{Name: "Thrift", ID: "thrift", Extensions: []string{".thrift"}, LineComments: []string{"//", "#"}, Block: BlockComment{Open: "/*", Close: "*/"}, Strings: StringRule{DoubleQuote: true}},
		{Name: "WebAssembly", ID: "wasm", Extensions: []string{".wat", ".wast"}, Block: BlockComment{Open: "(;", Close: ";)", Nested: true}, LineComments: []string{";;"}, Strings: StringRule{DoubleQuote: true}},
		{Name: "CSV", ID: "csv", Extensions: []string{".csv"}, Strings: StringRule{DoubleQuote: true}},
		{Name: "TSV", ID: "tsv", Extensions: []string{".tsv"}, Strings: StringRule{}},
		{Name: "INI", ID: "ini", Extensions: []string{".ini", ".cfg", ".conf"}, LineComments: []string{";", "#"}, Strings: StringRule{}},
		{Name: "Dotenv", ID: "dotenv", Extensions: []string{".env"}, LineComments: []string{"#"}, Strings: StringRule{DoubleQuote: true, SingleQuote: true}},
	}
}

func buildAndOther() []Profile {
	return []Profile{
		{
			Name: "Makefile", ID: "makefile",
			Filenames:    []string{"Makefile", "makefile", "GNUmakefile"},
			Extensions:   []string{".mk", ".mak"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "Dockerfile", ID: "dockerfile",
			Filenames:    []string{"Dockerfile"},
			Extensions:   []string{".dockerfile"},
			LineComments: []string{"#"},
			Strings:      StringRule{DoubleQuote: true, SingleQuote: true},
		},
		{
			Name: "CMake", ID: "cmake",
			Filenames:    []string{"CMakeLists.txt"},
			Extensions:   []string{".cmake"},
			LineComments: []string{"#"},
			Block:        BlockComment{Open: "#[[", Close: "]]"},
			Strings:      StringRule{DoubleQuote: true},
		},
		{
			Name: "HCL", ID: "hcl",
			Extensions:   []string{".tf", ".tfvars", ".hcl"},
			LineComments: []string{"#", "//"},
			Block:        BlockComment{Open: "/*", Close: "*/"},
			Strings:      StringRule{DoubleQuote: true},
		},
	}
}
