package winpath

// UTF-16 variants of the decomposition functions, for callers holding
// wide text as the Windows APIs hand it out. Results are subslices of
// path: they share its backing array, must not be written through while
// the original is in use, and stay valid only as long as it does.

// HasDriveLetterPrefixUTF16 reports whether path begins with an ASCII
// drive letter followed by ':'. The letter check is case-insensitive.
func HasDriveLetterPrefixUTF16(path []uint16) bool {
	return hasDrivePrefix(path)
}

// RootNameUTF16 returns the prefix of path identifying a filesystem
// root, or an empty slice when path has none.
func RootNameUTF16(path []uint16) []uint16 {
	return path[:rootNameEnd(path)]
}

// RootDirectoryUTF16 returns the run of separators between the
// root-name and the relative-path.
func RootDirectoryUTF16(path []uint16) []uint16 {
	return path[rootNameEnd(path):relativePathStart(path)]
}

// RelativePathUTF16 returns everything in path after the root-name and
// root-directory.
func RelativePathUTF16(path []uint16) []uint16 {
	return path[relativePathStart(path):]
}

// ParentPathUTF16 returns path with its trailing filename and the
// separators before it removed.
func ParentPathUTF16(path []uint16) []uint16 {
	return path[:parentPathEnd(path)]
}

// FilenameUTF16 returns the last element of the relative-path.
func FilenameUTF16(path []uint16) []uint16 {
	return path[filenameStart(path):]
}

// StemUTF16 returns the filename without its extension and without any
// alternate-data-stream suffix.
func StemUTF16(path []uint16) []uint16 {
	name, ext, _ := splitFilename(path)
	return path[name:ext]
}

// ExtensionUTF16 returns the filename suffix starting at the dot that
// separates stem from extension, excluding any alternate-data-stream
// suffix.
func ExtensionUTF16(path []uint16) []uint16 {
	_, ext, ads := splitFilename(path)
	return path[ext:ads]
}

// HasRootNameUTF16 reports whether path begins with a root-name.
func HasRootNameUTF16(path []uint16) bool {
	return rootNameEnd(path) > 0
}

// HasRootDirectoryUTF16 reports whether path has a root-directory.
func HasRootDirectoryUTF16(path []uint16) bool {
	return relativePathStart(path) > rootNameEnd(path)
}

// IsAbsUTF16 reports whether path has both a root-name and a
// root-directory.
func IsAbsUTF16(path []uint16) bool {
	end := rootNameEnd(path)
	return end > 0 && relativePathStart(path) > end
}

// SplitUTF16 cuts path into its parent and the remaining child element
// so that concatenating the two restores path.
func SplitUTF16(path []uint16) (parent, child []uint16) {
	i := parentPathEnd(path)
	return path[:i], path[i:]
}
