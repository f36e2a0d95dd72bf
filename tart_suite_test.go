package tart

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.

func TestTartSuite(t *testing.T) { TestingT(t) }

type DocumentSuite struct{}

var _ = Suite(&DocumentSuite{})

func (s *DocumentSuite) TestTopLevelAssembly(c *C) {
	tpl := Must(FromString(`[let x 1] hello "world"`))
	out, err := tpl.Execute()
	c.Assert(err, IsNil)
	c.Check(out, Equals, "hello world")
}

func (s *DocumentSuite) TestHelperCallsInterleaveWithText(c *C) {
	tpl := Must(FromString(
		"[let em [lambda [w] [cat <em> [get w] </em>]]] Some [em big] word"))
	out, err := tpl.Execute()
	c.Assert(err, IsNil)
	c.Check(out, Equals, "Some <em>big</em> word")
}

func (s *DocumentSuite) TestUndeclaredVariable(c *C) {
	tpl := Must(FromString("[foo]"))
	_, err := tpl.Execute()
	c.Assert(err, NotNil)
	c.Check(err, ErrorMatches, `\[<string>, line 1\] use of undeclared variable .foo.`)
}

func (s *DocumentSuite) TestExplicitLayoutStrings(c *C) {
	tpl := Must(FromString(`first "\n" second`))
	out, err := tpl.Execute()
	c.Assert(err, IsNil)
	c.Check(out, Equals, "first\nsecond")
}
