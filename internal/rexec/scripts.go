package rexec

import "fmt"

// Fixed script strings forwarded to Rscript -e. Their semantics are
// owned entirely by the R packages they call.
const (
	// ScriptWriteIndex rebuilds the PACKAGES index of a source
	// repository. Run with the repository as working directory.
	ScriptWriteIndex = `tools::write_PACKAGES(".", type = "source", verbose = TRUE)`

	// ScriptSessionInfo prints the interpreter's session information.
	ScriptSessionInfo = `sessionInfo()`

	// ScriptCheck runs R CMD check via devtools on the current package.
	ScriptCheck = `devtools::check()`

	// ScriptDocument regenerates roxygen2 documentation.
	ScriptDocument = `devtools::document()`

	// ScriptStyle restyles the current package's sources.
	ScriptStyle = `styler::style_pkg()`

	// ScriptTest runs the package's testthat suite.
	ScriptTest = `devtools::test()`
)

// ScriptCreatePackage returns the script that creates a package skeleton
// at path. The path is quoted with Go %q, which is also valid R string
// syntax.
func ScriptCreatePackage(path string) string {
	return fmt.Sprintf("devtools::create(%q)", path)
}
