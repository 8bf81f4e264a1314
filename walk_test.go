package winpath

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

// assertDecomposition checks the reconstruction laws that hold for
// every input: the root components tile the path, parent+child restore
// it, and stem+extension restore the filename up to the stream marker.
func assertDecomposition(t *testing.T, path string) {
	t.Helper()
	assert.Equal(t, path, RootName(path)+RootDirectory(path)+RelativePath(path), "path %q", path)
	parent, child := Split(path)
	assert.Equal(t, path, parent+child, "path %q", path)
	assert.Assert(t, strings.HasPrefix(path, ParentPath(path)), "path %q", path)
	name := Filename(path)
	assert.Assert(t, strings.HasSuffix(path, name), "path %q", path)
	stream := strings.IndexByte(name, ':')
	if stream < 0 {
		stream = len(name)
	}
	assert.Equal(t, name[:stream], Stem(path)+Extension(path), "path %q", path)
}

// TestDecomposeWalkedPaths feeds the decomposition every path an
// in-memory filesystem walk produces, the directory-listing flavor of
// caller this library exists for.
func TestDecomposeWalkedPaths(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := []string{
		"/tmp/a/b/file.txt",
		"/tmp/a/.gitignore",
		"/tmp/x.tar.gz",
		"/srv/data/archive.",
		"/srv/data/noext",
		"/srv/deep/x/y/z/leaf.bin",
	}
	for _, name := range files {
		assert.NilError(t, afero.WriteFile(fsys, name, []byte("content"), 0o644))
	}

	visited := 0
	err := afero.Walk(fsys, "/", func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		visited++
		assertDecomposition(t, path)
		if !strings.HasSuffix(path, "/") && path != "/" {
			// walk emits clean paths, so Filename agrees with the last
			// slash-separated element
			want := path[strings.LastIndexByte(path, '/')+1:]
			assert.Equal(t, want, Filename(path), "path %q", path)
		}
		return nil
	})
	assert.NilError(t, err)
	assert.Assert(t, visited > len(files), "walk visited %d entries", visited)
}

var (
	sinkString string
	sinkBool   bool
)

func TestZeroAllocation(t *testing.T) {
	paths := []string{
		`C:\Users\a\file.txt:stream`,
		`\\server\share\archive.tar.gz`,
		`\\?\UNC\server\share`,
		"relative/path/.gitignore",
		"..",
		"",
	}
	allocs := testing.AllocsPerRun(100, func() {
		for _, p := range paths {
			sinkString = RootName(p)
			sinkString = RootDirectory(p)
			sinkString = RelativePath(p)
			sinkString = ParentPath(p)
			sinkString = Filename(p)
			sinkString = Stem(p)
			sinkString = Extension(p)
			sinkBool = HasDriveLetterPrefix(p)
			sinkBool = IsAbs(p)
			parent, child := Split(p)
			sinkString = parent
			sinkString = child
		}
	})
	if allocs != 0 {
		t.Errorf("expected zero allocations, got %v", allocs)
	}
}
