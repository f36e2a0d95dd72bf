// A procedural markup language.
//
// A tart document is a sequence of expressions: bare words, quoted strings,
// and bracketed procedure calls of the form [proc arg arg ...]. Evaluating
// the document yields strings that are joined with whitespace-aware
// separation to form the final output, which lets authors mix plain text
// with reusable markup constructs defined directly in the document.
//
// A tiny example with document strings:
//
//	// Compile the document first (i. e. creating the AST)
//	tpl, err := tart.FromString("[let name World] hello [get name]")
//	if err != nil {
//	    panic(err)
//	}
//	// Now evaluate it to produce the document output.
//	out, err := tpl.Execute()
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(out) // Output: hello World
package tart
