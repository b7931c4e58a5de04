package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeStringer_TypeString(t *testing.T) {
	graph := loadSample(t)
	stringer := NewTypeStringer()

	doc := graph.GetType(TypeID{PkgPath: samplePkg, Name: "Document"})
	require.NotNil(t, doc)
	assert.Equal(t, "Document", stringer.TypeString(doc))

	cases := map[string]string{
		"Title":   "string",
		"Author":  "*Person",
		"Meta":    "Metadata",
		"Tags":    "[]string",
		"Created": "time.Time",
	}

	for field, want := range cases {
		assert.Equal(t, want, stringer.TypeString(findField(t, doc, field).Type), field)
	}
}

func TestTypeStringer_NilType(t *testing.T) {
	stringer := NewTypeStringer()
	assert.Equal(t, "<nil>", stringer.TypeString(nil))
	assert.Equal(t, "<unknown>", stringer.TypeString(&TypeInfo{}))
}
