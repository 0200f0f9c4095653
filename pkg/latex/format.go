package latex

// File and diagram boilerplate.
const (
	FileHeader = `\documentclass{article}
\usepackage{tikz}
\usepackage{amssymb}
\usepackage{tikz-qtree}
\begin{document}
\begin{center}
\textbf{LATEX TREE GENERATOR}\newline\newline
`
	FileFooter = `\end{center}
\end{document}
`
	TreeHeader = "\\begin{tikzpicture}\n\\Tree "
	TreeFooter = "\n\\end{tikzpicture}\\newline\\newline\n"

	// NullSymbol is drawn in place of an absent child.
	NullSymbol = `[ .$\varnothing$ ]`
)

const (
	// DefaultFileName is used when no file name is given.
	DefaultFileName = "latex_tree.tex"
	// DefaultDir is the output directory, relative to the working directory.
	DefaultDir = "latex"
)
