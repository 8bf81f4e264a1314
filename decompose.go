package winpath

// char is the set of character widths the decomposition runs over:
// bytes for narrow text, uint16 for UTF-16 code units. The algorithm is
// written once against []C so the narrow and wide surfaces cannot
// drift apart.
type char interface {
	~byte | ~uint16
}

func isSlash[C char](c C) bool {
	return c == '\\' || c == '/'
}

// asciiLowercase sets the case bit, mapping ASCII uppercase to
// lowercase. Non-letters come out as values the drive test rejects.
func asciiLowercase[C char](c C) C {
	return c | ('a' - 'A')
}

// isDrivePrefix reports whether p starts with a prefix of the form X:.
// The caller must guarantee len(p) >= 2; use hasDrivePrefix otherwise.
func isDrivePrefix[C char](p []C) bool {
	// C is unsigned, so anything below 'a' after folding wraps far past 26.
	return asciiLowercase(p[0])-'a' < 26 && p[1] == ':'
}

func hasDrivePrefix[C char](p []C) bool {
	return len(p) >= 2 && isDrivePrefix(p)
}

// rootNameEnd returns the offset just past the root-name of p, or 0
// when p has no root-name.
//
// The generic path grammar leaves root-name parsing up to the
// implementation. The decisions here:
//
//   - X:rel and X:\abs: X: is the root-name; a following separator, if
//     present, is the root-directory.
//   - \rel: no root-name, \ is the root-directory.
//   - \\server\share: \\server is the root-name and share the first
//     element of relative-path, so that replacing the filename of
//     \\server\share yields \\server\other.
//   - \\?\x, \\.\x, \??\x: CreateFile treats these device-namespace
//     prefixes alike; the first three characters are the root-name and
//     the following separator the root-directory.
//   - \\?\UNC\server\share: NT routes this through the same device
//     namespace as any other \\?\ path, so it is deliberately handled
//     by the \\?\ rule above rather than special-cased.
//
// The checks are ordered: the device-namespace rule must run before
// the \\server rule, since both can match four or more characters
// starting with two separators.
func rootNameEnd[C char](p []C) int {
	if len(p) < 2 {
		return 0
	}

	if isDrivePrefix(p) { // X: is the most common root-name, try it first
		return 2
	}

	if !isSlash(p[0]) { // every other root-name starts with a separator
		return 0
	}

	// \\?\$, \\.\$ or \??\$ where $ is anything but a separator,
	// including the end of the input
	if len(p) >= 4 && isSlash(p[3]) && (len(p) == 4 || !isSlash(p[4])) &&
		((isSlash(p[1]) && (p[2] == '?' || p[2] == '.')) ||
			(p[1] == '?' && p[2] == '?')) {
		return 3
	}

	if len(p) >= 3 && isSlash(p[1]) && !isSlash(p[2]) { // \\server
		i := 3
		for i < len(p) && !isSlash(p[i]) {
			i++
		}
		return i
	}

	return 0
}

// relativePathStart returns the offset of the first non-separator at
// or past the root-name: the start of relative-path. The separators
// skipped over, if any, form the root-directory.
func relativePathStart[C char](p []C) int {
	i := rootNameEnd(p)
	for i < len(p) && isSlash(p[i]) {
		i++
	}
	return i
}

// parentPathEnd returns the offset just past the parent-path of p.
// The trailing filename goes first, then the separators before it, so
// the parent never ends in a spurious empty element. Neither loop
// walks past the start of relative-path, which keeps the root-name
// and root-directory intact.
func parentPathEnd[C char](p []C) int {
	rel := relativePathStart(p)
	i := len(p)
	for i > rel && !isSlash(p[i-1]) {
		i--
	}
	for i > rel && isSlash(p[i-1]) {
		i--
	}
	return i
}

// filenameStart returns the offset of the last relative-path element.
// A path ending in a separator has filenameStart == len(p): the
// filename is empty.
func filenameStart[C char](p []C) int {
	rel := relativePathStart(p)
	i := len(p)
	for i > rel && !isSlash(p[i-1]) {
		i--
	}
	return i
}

// streamIndex returns the offset of the first ':' in name, or
// len(name). Within a filename, ':' introduces an alternate data
// stream, which stem/extension decomposition must not look past.
// name always starts after the root-name, so a drive-letter colon
// never lands here.
func streamIndex[C char](name []C) int {
	for i, c := range name {
		if c == ':' {
			return i
		}
	}
	return len(name)
}

// extensionStart returns the offset within name where the extension
// begins, or len(name) when there is none. name must already be cut at
// the alternate-data-stream marker.
func extensionStart[C char](name []C) int {
	n := len(name)
	if n <= 1 {
		// empty, or a single character; even a lone dot has no extension
		return n
	}

	if name[n-1] == '.' {
		if n == 2 && name[0] == '.' { // dot-dot never splits
			return n
		}
		return n - 1 // "x." has extension "."
	}

	for i := n - 2; i > 0; i-- {
		if name[i] == '.' {
			return i
		}
	}

	// no dot at all, or only the leading one (".gitignore" style)
	return n
}

// splitFilename locates the filename and its internal boundaries:
// [name, ext) is the stem, [ext, ads) the extension, and [ads, len(p))
// the alternate-data-stream suffix, possibly all empty.
func splitFilename[C char](p []C) (name, ext, ads int) {
	name = filenameStart(p)
	ads = name + streamIndex(p[name:])
	ext = name + extensionStart(p[name:ads])
	return name, ext, ads
}
