//go:build !cgo

package window

import (
	"errors"

	"orthoview/pkg/viewer"
)

// Run is unavailable without cgo
func Run(_ *viewer.Viewer, _ string) error {
	return errors.New("interactive mode requires cgo (build/run with CGO_ENABLED=1)")
}
