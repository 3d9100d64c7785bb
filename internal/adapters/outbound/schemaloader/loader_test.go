package schemaloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundtrack/runcheck/internal/adapters/outbound/schemaloader"
	"github.com/groundtrack/runcheck/internal/domain"
)

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_CompilesFullTree(t *testing.T) {
	path := writeSchema(t, `
name: runconfig
kind: group
required: true
children:
  - name: product_type
    kind: enum
    required: true
    values: [DSWX_HLS, DSWX_S1]
  - name: input_file_paths
    kind: list
    min_items: 1
    element:
      kind: string
  - name: thresholds
    kind: group
    children:
      - name: wigt
        kind: number
`)

	schema, err := schemaloader.New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "runconfig", schema.Name)
	assert.Equal(t, domain.KindGroup, schema.Kind)
	assert.True(t, schema.Required)

	pt := schema.Child("product_type")
	require.NotNil(t, pt)
	assert.Equal(t, []string{"DSWX_HLS", "DSWX_S1"}, pt.AllowedValues)

	paths := schema.Child("input_file_paths")
	require.NotNil(t, paths)
	assert.Equal(t, 1, paths.MinItems)
	require.NotNil(t, paths.Elem)
	assert.Equal(t, domain.KindString, paths.Elem.Kind)
	assert.Equal(t, "input_file_paths", paths.Elem.Name)

	wigt := schema.Child("thresholds").Child("wigt")
	require.NotNil(t, wigt)
	assert.Equal(t, domain.KindNumber, wigt.Kind)
}

func TestLoad_CompiledSchemaValidates(t *testing.T) {
	path := writeSchema(t, `
name: runconfig
kind: group
required: true
children:
  - name: product_type
    kind: enum
    required: true
    values: [DSWX_HLS]
`)

	schema, err := schemaloader.New().Load(path)
	require.NoError(t, err)

	doc := map[string]any{
		"runconfig": map[string]any{"product_type": "DSWX_FOO"},
	}
	report := domain.NewValidator(false).Validate(doc, schema)

	require.Len(t, report.Violations, 1)
	assert.Equal(t, "runconfig.product_type", report.Violations[0].Path)
	assert.Equal(t, domain.ReasonInvalidEnum, report.Violations[0].Reason)
}

func TestLoad_UnknownKind(t *testing.T) {
	path := writeSchema(t, `
name: runconfig
kind: group
children:
  - name: weird
    kind: struct
`)

	_, err := schemaloader.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runconfig.weird")
	assert.Contains(t, err.Error(), `unknown kind "struct"`)
}

func TestLoad_EnumWithoutValues(t *testing.T) {
	path := writeSchema(t, `
name: runconfig
kind: enum
`)

	_, err := schemaloader.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one value")
}

func TestLoad_ListWithoutElement(t *testing.T) {
	path := writeSchema(t, `
name: files
kind: list
`)

	_, err := schemaloader.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element type")
}

func TestLoad_ElementOnNonList(t *testing.T) {
	path := writeSchema(t, `
name: flag
kind: boolean
element:
  kind: string
`)

	_, err := schemaloader.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "element only applies to list nodes")
}

func TestLoad_MinItemsOnNonList(t *testing.T) {
	path := writeSchema(t, `
name: flag
kind: boolean
min_items: 2
`)

	_, err := schemaloader.New().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_items")
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeSchema(t, "kind: [broken")

	_, err := schemaloader.New().Load(path)
	require.Error(t, err)
	var parseErr *domain.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
