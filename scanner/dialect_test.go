package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDialect(t *testing.T) {
	d, err := LookupDialect("JS")
	require.NoError(t, err)
	assert.Equal(t, "javascript", d.Name)

	d, err = LookupDialect("tsql")
	require.NoError(t, err)
	assert.Equal(t, "sql", d.Name)

	_, err = LookupDialect("cobol")
	assert.ErrorContains(t, err, `unknown dialect "cobol"`)
	assert.ErrorContains(t, err, "html, javascript, js, sql, tsql")
}

func TestDialect_quoteFor(t *testing.T) {
	assert.Equal(t, 2, JavaScript.quoteFor('`'))
	assert.Equal(t, -1, JavaScript.quoteFor('['))
	assert.Equal(t, 2, SQL.quoteFor('['))
}
