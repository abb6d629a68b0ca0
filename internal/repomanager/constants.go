package repomanager

import "os"

const (
	remoteOrigin = "origin"

	dirPerm os.FileMode = 0o750

	noLockNote = "no lock present"
)
