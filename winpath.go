// Package winpath decomposes Windows-style path strings without
// allocating.
//
// Every function is a pure, total computation over its input: the
// results are substrings (or subslices, for the UTF-16 variants) of the
// input and share its storage, an absent component is an empty view,
// and no input is ever an error. Both separators, drive letters, UNC
// shares (\\server\share), device-namespace prefixes (\\?\, \\.\, \??\)
// and alternate data streams (name:stream) are understood. Slash-only
// POSIX paths fall out of the same grammar.
//
// Because every result borrows from the input, results are valid only
// as long as the input is; with Go strings that is automatic.
package winpath

// HasDriveLetterPrefix reports whether path begins with an ASCII drive
// letter followed by ':'. The letter check is case-insensitive.
func HasDriveLetterPrefix(path string) bool {
	return hasDrivePrefix(viewBytes(path))
}

// RootName returns the prefix of path identifying a filesystem root:
// a drive letter ("C:"), a UNC server (`\\server`) or a
// device-namespace prefix (`\\?`), or "" when path has none.
func RootName(path string) string {
	return path[:rootNameEnd(viewBytes(path))]
}

// RootDirectory returns the run of separators between the root-name
// and the relative-path, or "" when path has no root-directory.
func RootDirectory(path string) string {
	p := viewBytes(path)
	return path[rootNameEnd(p):relativePathStart(p)]
}

// RelativePath returns everything in path after the root-name and
// root-directory.
func RelativePath(path string) string {
	return path[relativePathStart(viewBytes(path)):]
}

// ParentPath returns path with its trailing filename and the
// separators before it removed. The root-name and root-directory are
// always retained, so the parent of `C:\` is `C:\` itself.
func ParentPath(path string) string {
	return path[:parentPathEnd(viewBytes(path))]
}

// Filename returns the last element of the relative-path. A path
// ending in a separator has an empty filename.
func Filename(path string) string {
	return path[filenameStart(viewBytes(path)):]
}

// Stem returns the filename without its extension and without any
// alternate-data-stream suffix.
func Stem(path string) string {
	name, ext, _ := splitFilename(viewBytes(path))
	return path[name:ext]
}

// Extension returns the filename suffix starting at the dot that
// separates stem from extension, excluding any alternate-data-stream
// suffix. Dot-dot and leading-dot filenames (".." , ".gitignore") have
// no extension; "x." has extension ".".
func Extension(path string) string {
	_, ext, ads := splitFilename(viewBytes(path))
	return path[ext:ads]
}

// HasRootName reports whether path begins with a root-name.
func HasRootName(path string) bool {
	return rootNameEnd(viewBytes(path)) > 0
}

// HasRootDirectory reports whether path has a root-directory.
func HasRootDirectory(path string) bool {
	p := viewBytes(path)
	return relativePathStart(p) > rootNameEnd(p)
}

// IsAbs reports whether path is absolute: it has both a root-name and
// a root-directory. Drive-relative "C:foo" and root-relative `\foo`
// are not absolute.
func IsAbs(path string) bool {
	p := viewBytes(path)
	end := rootNameEnd(p)
	return end > 0 && relativePathStart(p) > end
}

// Split cuts path into its parent and the remaining child element so
// that parent+child == path. The child keeps the separators between
// the parent and the filename.
func Split(path string) (parent, child string) {
	i := parentPathEnd(viewBytes(path))
	return path[:i], path[i:]
}
