package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"portfolio-site/pkg/placeholder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestPlaceholdersCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "images")

	stdout, _, err := run(t, "placeholders", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "placeholder images written")

	for _, spec := range placeholder.Defaults {
		info, err := os.Stat(filepath.Join(out, spec.Filename))
		require.NoError(t, err, spec.Filename)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestExportLogCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "contact_logs.txt")
	out := filepath.Join(dir, "submissions.xlsx")
	writeFile(t, in, []byte(
		"2024-05-01 10:00:00 - Name: Ada, Email: ada@example.com, Subject: Hello\n"+
			"garbage line\n"+
			"2024-05-02 11:30:00 - Name: Tom &amp; Jerry, Email: tj@example.com, Subject: Work\n"))

	stdout, stderr, err := run(t, "export-log", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Exported 2 submissions")
	assert.Contains(t, stderr, "line 2")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "NAME", rows[0][1])
	assert.Equal(t, "Tom & Jerry", rows[2][1])
}

func TestExportLogMissingInput(t *testing.T) {
	_, _, err := run(t, "export-log", "--in", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestCheckDataCommand(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	media := filepath.Join(root, "public")

	writeFile(t, filepath.Join(data, "projects.json"), []byte(`{"projects":[
		{"title":"Site","description":"d","image":"images/site.jpg","link":"https://example.com","featured":true}
	]}`))
	writeFile(t, filepath.Join(data, "gallery.json"), []byte(`{"gallery":[
		{"type":"image","thumbnail":"/images/t.jpg","fullImage":"/images/t.jpg","title":"A","category":"photography"},
		{"type":"video","thumbnail":"https://img.example/v.jpg","videoUrl":"https://www.youtube.com/embed/x","title":"B","category":"videos"}
	]}`))
	writeFile(t, filepath.Join(media, "images", "site.jpg"), jpegHeader)
	writeFile(t, filepath.Join(media, "images", "t.jpg"), jpegHeader)

	stdout, stderr, err := run(t, "check-data", "--data", data, "--media", media)
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Content documents OK")
}

func TestCheckDataReportsProblems(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	media := filepath.Join(root, "public")

	writeFile(t, filepath.Join(data, "projects.json"), []byte(`{"projects":[{"title":"Site"}]}`))
	writeFile(t, filepath.Join(data, "gallery.json"), []byte(`{"gallery":[
		{"type":"image","thumbnail":"images/fake.jpg","fullImage":"images/missing.jpg","title":"A","category":"art"}
	]}`))
	writeFile(t, filepath.Join(media, "images", "fake.jpg"), []byte("not an image"))

	_, stderr, err := run(t, "check-data", "--data", data, "--media", media)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, stderr, "projects.json")
	assert.Contains(t, stderr, "images/fake.jpg")
	assert.Contains(t, stderr, "images/missing.jpg")
}

func TestIsLocalMedia(t *testing.T) {
	assert.True(t, isLocalMedia("images/a.jpg"))
	assert.True(t, isLocalMedia("/videos/a.mp4"))
	assert.False(t, isLocalMedia("https://www.youtube.com/embed/x"))
	assert.False(t, isLocalMedia("//cdn.example/a.jpg"))
	assert.False(t, isLocalMedia(""))
}
