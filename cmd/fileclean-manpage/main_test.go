package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenchou/file-clean/cmd/fileclean"
	"github.com/kenchou/file-clean/internal/version"
)

func TestManHeader(t *testing.T) {
	header := manHeader()
	assert.Equal(t, "FILECLEAN", header.Title)
	assert.Equal(t, version.String(), header.Source)
	assert.Nil(t, header.Date, "unknown build date leaves the date to cobra")
}

func TestManPageDescribesRootCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, doc.GenMan(fileclean.NewRootCmd(), manHeader(), &out))

	page := out.String()
	assert.Contains(t, page, `.TH "FILECLEAN" "1"`)
	assert.Contains(t, page, "File cleaning utilities")
	assert.Contains(t, page, `\-\-prune`)
}
