package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"anmitsu/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsBlock = `
nyaaInfo:
  username: nyaa-user
  password: nyaa-pass
azukiAuth:
  username: azuki-user
  password: azuki-pass
`

func minimalDocument(automate string) string {
	return "automate:\n" + automate + credentialsBlock
}

const singleTask = `
  - slug: one-piece
    title: One Piece
    outputFormat: "{title} c{chapter}"
`

func TestParse_MinimalDocumentDefaults(t *testing.T) {
	cfg, err := ParseString(minimalDocument(singleTask))
	require.NoError(t, err)

	require.Len(t, cfg.Automate, 1)
	task := cfg.Automate[0]
	assert.Equal(t, "one-piece", task.Slug)
	assert.Equal(t, "One Piece", task.Title)
	assert.Equal(t, "{title} c{chapter}", task.OutputFormat)
	assert.Nil(t, task.StartFrom)
	assert.False(t, task.IncludeChapterName)
	assert.False(t, task.AutoUpload)
	assert.Nil(t, task.NyaaDescription)

	assert.Equal(t, domain.Credential{Username: "nyaa-user", Password: "nyaa-pass"}, cfg.NyaaAuth)
	assert.Equal(t, domain.Credential{Username: "azuki-user", Password: "azuki-pass"}, cfg.AzukiAuth)
	assert.Equal(t, domain.DefaultDatabasePath, cfg.DB.Path)
}

func TestParse_FullTask(t *testing.T) {
	doc := minimalDocument(`
  - slug: kagurabachi
    title: "  Kagurabachi  "
    outputFormat: "\t{title} - {chapter} \n"
    startFrom: 12
    includeChapterName: true
    autoUpload: true
    nyaaDescription: "  Weekly   release  "
`) + `
db:
  path: /custom/path.db
`

	cfg, err := ParseString(doc)
	require.NoError(t, err)
	require.Len(t, cfg.Automate, 1)

	task := cfg.Automate[0]
	assert.Equal(t, "Kagurabachi", task.Title)
	assert.Equal(t, "{title} - {chapter}", task.OutputFormat)
	require.NotNil(t, task.StartFrom)
	assert.Equal(t, 12, *task.StartFrom)
	assert.True(t, task.IncludeChapterName)
	assert.True(t, task.AutoUpload)
	require.NotNil(t, task.NyaaDescription)
	assert.Equal(t, "Weekly   release", *task.NyaaDescription)
	assert.Equal(t, "/custom/path.db", cfg.DB.Path)
}

func TestParse_TrimsOnlyBoundaries(t *testing.T) {
	cfg, err := ParseString(minimalDocument(`
  - slug: "  slug-kept  "
    title: "  My   Title  "
    outputFormat: "  out  "
`))
	require.NoError(t, err)

	task := cfg.Automate[0]
	assert.Equal(t, "  slug-kept  ", task.Slug)
	assert.Equal(t, "My   Title", task.Title)
	assert.Equal(t, "out", task.OutputFormat)
}

func TestParse_CredentialsNotTrimmed(t *testing.T) {
	doc := `
automate: []
nyaaInfo:
  username: " user "
  password: " pass "
azukiAuth:
  username: a
  password: b
`
	cfg, err := ParseString(doc)
	require.NoError(t, err)
	assert.Equal(t, " user ", cfg.NyaaAuth.Username)
	assert.Equal(t, " pass ", cfg.NyaaAuth.Password)
}

func TestParse_WhitespaceOnlyTitleBecomesEmpty(t *testing.T) {
	cfg, err := ParseString(minimalDocument(`
  - slug: blank
    title: "   "
    outputFormat: out
`))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Automate[0].Title)
}

func TestParse_PreservesTaskOrder(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		t.Run(fmt.Sprintf("%d tasks", n), func(t *testing.T) {
			var b strings.Builder
			if n == 0 {
				b.WriteString("  []\n")
			}
			for i := 0; i < n; i++ {
				fmt.Fprintf(&b, "  - slug: series-%d\n    title: Series %d\n    outputFormat: out\n", i, i)
			}

			cfg, err := ParseString(minimalDocument(b.String()))
			require.NoError(t, err)
			require.Len(t, cfg.Automate, n)
			for i, task := range cfg.Automate {
				assert.Equal(t, fmt.Sprintf("series-%d", i), task.Slug)
			}
		})
	}
}

func TestParse_EmptyAutomateKey(t *testing.T) {
	cfg, err := ParseString(minimalDocument(""))
	require.NoError(t, err)
	assert.NotNil(t, cfg.Automate)
	assert.Empty(t, cfg.Automate)
}

func TestParse_Database(t *testing.T) {
	tests := []struct {
		name string
		db   string
		want string
	}{
		{name: "absent", db: "", want: "anmitsu.db"},
		{name: "null block", db: "db:\n", want: "anmitsu.db"},
		{name: "no path", db: "db:\n  other: 1\n", want: "anmitsu.db"},
		{name: "empty path", db: "db:\n  path: \"\"\n", want: "anmitsu.db"},
		{name: "null path", db: "db:\n  path: ~\n", want: "anmitsu.db"},
		{name: "custom", db: "db:\n  path: /custom/path.db\n", want: "/custom/path.db"},
		{name: "relative", db: "db:\n  path: data/anmitsu.sqlite\n", want: "data/anmitsu.sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseString(minimalDocument("  []\n") + tt.db)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.DB.Path)
		})
	}
}

func TestParse_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
		path  string
	}{
		{
			name:  "automate",
			doc:   credentialsBlock,
			field: "automate",
		},
		{
			name:  "nyaaInfo",
			doc:   "automate: []\nazukiAuth:\n  username: a\n  password: b\n",
			field: "nyaaInfo",
		},
		{
			name:  "azukiAuth",
			doc:   "automate: []\nnyaaInfo:\n  username: a\n  password: b\n",
			field: "azukiAuth",
		},
		{
			name:  "null nyaaInfo",
			doc:   "automate: []\nnyaaInfo:\nazukiAuth:\n  username: a\n  password: b\n",
			field: "nyaaInfo",
		},
		{
			name:  "slug",
			doc:   minimalDocument("  - title: t\n    outputFormat: o\n"),
			field: "slug",
			path:  "automate[0]",
		},
		{
			name:  "title",
			doc:   minimalDocument("  - slug: s\n    outputFormat: o\n"),
			field: "title",
			path:  "automate[0]",
		},
		{
			name:  "outputFormat in second task",
			doc:   minimalDocument(singleTask + "  - slug: s\n    title: t\n"),
			field: "outputFormat",
			path:  "automate[1]",
		},
		{
			name:  "nyaaInfo username",
			doc:   "automate: []\nnyaaInfo:\n  password: p\nazukiAuth:\n  username: a\n  password: b\n",
			field: "username",
			path:  "nyaaInfo",
		},
		{
			name:  "azukiAuth password",
			doc:   "automate: []\nnyaaInfo:\n  username: a\n  password: b\nazukiAuth:\n  username: a\n",
			field: "password",
			path:  "azukiAuth",
		},
		{
			name:  "null title",
			doc:   minimalDocument("  - slug: s\n    title:\n    outputFormat: o\n"),
			field: "title",
			path:  "automate[0]",
		},
		{
			name:  "empty document",
			doc:   "",
			field: "automate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseString(tt.doc)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
			assert.Equal(t, tt.path, missing.Path)
		})
	}
}

func TestParse_FailsOnFirstProblem(t *testing.T) {
	// automate is checked before the credential blocks
	_, err := ParseString("nyaaInfo: {}\n")

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "automate", missing.Field)

	// a broken first task wins over a broken second task
	_, err = ParseString(minimalDocument("  - title: t\n    outputFormat: o\n  - slug: s\n    outputFormat: o\n"))
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "slug", missing.Field)
	assert.Equal(t, "automate[0]", missing.Path)
}

func TestParse_TypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		field    string
		path     string
		expected string
		got      string
	}{
		{
			name:     "automate is a mapping",
			doc:      "automate:\n  slug: s\n" + credentialsBlock,
			field:    "automate",
			expected: "sequence",
			got:      "mapping",
		},
		{
			name:     "task is a scalar",
			doc:      minimalDocument("  - just-a-slug\n"),
			field:    "automate[0]",
			expected: "mapping",
			got:      "string",
		},
		{
			name:     "startFrom is a string",
			doc:      minimalDocument("  - slug: s\n    title: t\n    outputFormat: o\n    startFrom: \"12\"\n"),
			field:    "startFrom",
			path:     "automate[0]",
			expected: "integer",
			got:      "string",
		},
		{
			name:     "startFrom is a float",
			doc:      minimalDocument("  - slug: s\n    title: t\n    outputFormat: o\n    startFrom: 1.5\n"),
			field:    "startFrom",
			path:     "automate[0]",
			expected: "integer",
			got:      "float",
		},
		{
			name:     "autoUpload is a string",
			doc:      minimalDocument("  - slug: s\n    title: t\n    outputFormat: o\n    autoUpload: \"yes please\"\n"),
			field:    "autoUpload",
			path:     "automate[0]",
			expected: "boolean",
			got:      "string",
		},
		{
			name:     "title is a list",
			doc:      minimalDocument("  - slug: s\n    title: [a, b]\n    outputFormat: o\n"),
			field:    "title",
			path:     "automate[0]",
			expected: "string",
			got:      "sequence",
		},
		{
			name:     "azukiAuth is a string",
			doc:      "automate: []\nnyaaInfo:\n  username: a\n  password: b\nazukiAuth: secret\n",
			field:    "azukiAuth",
			expected: "mapping",
			got:      "string",
		},
		{
			name:     "db is a string",
			doc:      minimalDocument("  []\n") + "db: anmitsu.db\n",
			field:    "db",
			expected: "mapping",
			got:      "string",
		},
		{
			name:     "db path is a number",
			doc:      minimalDocument("  []\n") + "db:\n  path: 42\n",
			field:    "path",
			path:     "db",
			expected: "string",
			got:      "integer",
		},
		{
			name:     "document is a sequence",
			doc:      "- automate\n- nyaaInfo\n",
			field:    "<root>",
			expected: "mapping",
			got:      "sequence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseString(tt.doc)
			require.Error(t, err)
			assert.Nil(t, cfg)

			var mismatch *TypeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tt.field, mismatch.Field)
			assert.Equal(t, tt.path, mismatch.Path)
			assert.Equal(t, tt.expected, mismatch.Expected)
			assert.Equal(t, tt.got, mismatch.Got)

			var missing *MissingFieldError
			assert.False(t, errors.As(err, &missing))
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	cfg, err := ParseString("automate: [unterminated\n")
	require.Error(t, err)
	assert.Nil(t, cfg)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.NotNil(t, parseErr.Unwrap())
	assert.Contains(t, err.Error(), "could not parse config")
}

func TestParse_IndependentResults(t *testing.T) {
	doc := minimalDocument(`
  - slug: s
    title: t
    outputFormat: o
    startFrom: 3
    nyaaDescription: d
`)

	first, err := ParseString(doc)
	require.NoError(t, err)
	second, err := ParseString(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	*first.Automate[0].StartFrom = 99
	*first.Automate[0].NyaaDescription = "changed"
	first.Automate[0].Title = "changed"

	assert.Equal(t, 3, *second.Automate[0].StartFrom)
	assert.Equal(t, "d", *second.Automate[0].NyaaDescription)
	assert.Equal(t, "t", second.Automate[0].Title)
}

func TestNewDatabase(t *testing.T) {
	empty := ""
	custom := "/srv/anmitsu.db"

	assert.Equal(t, "anmitsu.db", NewDatabase(nil).Path)
	assert.Equal(t, "anmitsu.db", NewDatabase(&empty).Path)
	assert.Equal(t, custom, NewDatabase(&custom).Path)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `missing required field "automate"`, (&MissingFieldError{Field: "automate"}).Error())
	assert.Equal(t, `missing required field "slug" in automate[2]`, (&MissingFieldError{Field: "slug", Path: "automate[2]"}).Error())
	assert.Equal(t,
		`field "automate[0].startFrom": expected integer, got string`,
		(&TypeMismatchError{Field: "startFrom", Path: "automate[0]", Expected: "integer", Got: "string"}).Error(),
	)
}

func TestParse_YAML11Booleans(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "yes", want: true},
		{value: "Yes", want: true},
		{value: "ON", want: true},
		{value: "on", want: true},
		{value: "no", want: false},
		{value: "Off", want: false},
		{value: "true", want: true},
		{value: "false", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := ParseString(minimalDocument(fmt.Sprintf(
				"  - slug: s\n    title: t\n    outputFormat: o\n    autoUpload: %s\n    includeChapterName: %s\n",
				tt.value, tt.value,
			)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Automate[0].AutoUpload)
			assert.Equal(t, tt.want, cfg.Automate[0].IncludeChapterName)
		})
	}
}

func TestParse_DuplicateKeyRejected(t *testing.T) {
	doc := minimalDocument("  []\n") + "nyaaInfo:\n  username: again\n  password: again\n"

	cfg, err := ParseString(doc)
	require.Error(t, err)
	assert.Nil(t, cfg)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "nyaaInfo")
}
