package tart

// Version string
const Version = "v1"

// Must is a helper function which panics, if a document couldn't be
// successfully compiled. This is how you would use it:
//
//	var helpers = tart.Must(tart.FromFile("documents/helpers.tart"))
func Must(tpl *Template, err error) *Template {
	if err != nil {
		panic(err)
	}
	return tpl
}
