package console_test

import (
	"bytes"
	"testing"

	"github.com/lambda-feedback/tandem/util/console"
	"github.com/stretchr/testify/assert"
)

func TestConsole_PrintsPrefixedLines(t *testing.T) {
	var buf bytes.Buffer

	c := console.New(&buf, "tandem")
	c.Infof("starting %s", "server")
	c.Failuref("exited with %d", 1)

	assert.Equal(t, "[tandem] starting server\n[tandem] exited with 1\n", buf.String())
}

func TestConsole_WithoutPrefix(t *testing.T) {
	var buf bytes.Buffer

	c := console.New(&buf, "")
	c.Successf("done")

	assert.Equal(t, "done\n", buf.String())
}
