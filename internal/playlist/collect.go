package playlist

import "github.com/llehouerou/shuffler/internal/library"

// FromDirectory scans root for music files and creates an Order over them
// in sorted path order. Returns nil and no error if nothing matches.
func FromDirectory(root string, opts library.ScanOptions) (*Order, error) {
	files, err := library.Scan(root, opts)
	if err != nil {
		return nil, err
	}
	return New(files), nil
}
