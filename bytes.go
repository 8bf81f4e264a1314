package winpath

import "unsafe"

// viewBytes returns a read-only byte view of s without copying, so the
// generic finders can run over string input allocation-free. The view
// must never be written to and must not outlive s.
func viewBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
