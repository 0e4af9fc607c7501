package base

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSet_StringSliceVar(t *testing.T) {
	var events []string
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.StringSliceVar(&events, "event", "Event.")

	err := f.Parse([]string{"-event", "document_created, file_deleted", "-event=member_added", "-event", ","})
	require.NoError(t, err)
	assert.Equal(t, []string{"document_created", "file_deleted", "member_added"}, events)
}

func TestFlagSet_StringSliceVarResetsOnDefinition(t *testing.T) {
	events := []string{"stale"}
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.StringSliceVar(&events, "event", "Event.")
	assert.Nil(t, events)
}

func TestFlagSet_ParseErrorIsReturned(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ExitOnError))
	f.Int("limit", 0, "Limit.")

	err := f.Parse([]string{"-limit", "many"})
	assert.Error(t, err)

	err = f.Parse([]string{"-unknown"})
	assert.Error(t, err)
}

func TestFlagSet_Help(t *testing.T) {
	var tags []string
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.String("name", "", "(Required) Display name.")
	f.Int("limit", 20, "Maximum number of results.")
	f.StringSliceVar(&tags, "tag", "Tag. May be repeated.")

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "  -name\n    (Required) Display name.")
	assert.Contains(t, help, "  -limit=20\n    Maximum number of results.")
	assert.Contains(t, help, "  -tag\n    Tag. May be repeated.")
}

func TestParseUUIDs(t *testing.T) {
	ids, err := ParseUUIDs([]string{
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b811-9dad-11d1-80b4-00c04fd430c8",
	})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = ParseUUIDs([]string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8", "nope"})
	assert.ErrorContains(t, err, `invalid ID "nope"`)

	_, err = ParseUUID("")
	assert.Error(t, err)
}

func TestNormalizeEnum(t *testing.T) {
	cases := map[string]string{
		"document_created": "document_created",
		"document-created": "document_created",
		"DocumentCreated":  "document_created",
		"documentCreated":  "document_created",
		" storage ":        "storage",
		"PDF":              "pdf",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, NormalizeEnum(in))
		})
	}
}
