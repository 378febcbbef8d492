//go:build darwin

package clipboard

func autoBackendCandidates() []Backend {
	return []Backend{BackendPasteboard}
}
