package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("unit X; interface implementation end."), 0o600))
}

func TestDecode(t *testing.T) {
	text, err := Decode([]byte("\xEF\xBB\xBFunit A;"))
	require.NoError(t, err)
	assert.Equal(t, "unit A;", text)

	text, err = Decode([]byte("'caf\xe9'"))
	require.NoError(t, err)
	assert.Equal(t, "'café'", text)

	text, err = Decode([]byte("'café'"))
	require.NoError(t, err)
	assert.Equal(t, "'café'", text)
}

func TestDiskLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inc", "defs.inc")
	touch(t, path)

	var l DiskLoader
	expanded := l.ExpandFileName(dir, `inc\defs.inc`)
	assert.Equal(t, path, expanded)
	assert.Equal(t, path, l.ExpandFileName("elsewhere", path))

	text, err := l.Load(expanded)
	require.NoError(t, err)
	assert.Contains(t, text, "unit X;")

	_, err = l.Load(filepath.Join(dir, "missing.inc"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryLoader(t *testing.T) {
	m := NewMemoryLoader(map[string]string{"Foo.pas": "unit Foo;"})
	text, err := m.Load("FOO.PAS")
	require.NoError(t, err)
	assert.Equal(t, "unit Foo;", text)

	m.Add("bar.inc", "X")
	assert.Equal(t, "bar.inc", m.ExpandFileName("dir", "bar.inc"))
	_, err = m.Load("Bar.inc")
	assert.NoError(t, err)

	_, err = m.Load("nope.pas")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMasks(t *testing.T) {
	m, err := CompileMasks([]string{"*.pas", " ", "*.DPR", "Unit?.inc"})
	require.NoError(t, err)
	assert.True(t, m.Match("src/Foo.PAS"))
	assert.True(t, m.Match("Main.dpr"))
	assert.True(t, m.Match("unit1.inc"))
	assert.False(t, m.Match("unit10.inc"))
	assert.False(t, m.Match("readme.txt"))

	all, err := CompileMasks([]string{"*"})
	require.NoError(t, err)
	assert.False(t, all.Match("Project.dproj"))
}

func TestSplitSearchPath(t *testing.T) {
	dir, rec := SplitSearchPath("src/**")
	assert.Equal(t, "src", dir)
	assert.True(t, rec)

	dir, rec = SplitSearchPath("lib")
	assert.Equal(t, "lib", dir)
	assert.False(t, rec)
}

func TestListFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.pas", "b.dpr", "notes.txt", "P.dproj", "sub/c.pas", "sub/deep/d.PAS"} {
		touch(t, filepath.Join(root, name))
	}
	masks := []string{"*.pas", "*.dpr"}

	top, err := ListFiles([]string{root}, masks)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.pas"), filepath.Join(root, "b.dpr")}, top)

	all, err := ListFiles([]string{filepath.Join(root, "**"), root, ""}, masks)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.pas"),
		filepath.Join(root, "b.dpr"),
		filepath.Join(root, "sub", "c.pas"),
		filepath.Join(root, "sub", "deep", "d.PAS"),
	}, all)

	_, err = ListFiles([]string{filepath.Join(root, "missing")}, masks)
	assert.Error(t, err)
}
