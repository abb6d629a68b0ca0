package repomanager

import (
	"github.com/go-git/go-git/v5"
)

// readHead returns the commit hash HEAD points to, or "" when the working copy
// cannot be opened or has no commits yet.
func (m *manager) readHead(dir string) string {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		m.logger.Debug("unable to open repository for HEAD lookup", "dir", dir, "error", err)
		return ""
	}
	head, err := repo.Head()
	if err != nil {
		m.logger.Debug("unable to resolve HEAD", "dir", dir, "error", err)
		return ""
	}
	return head.Hash().String()
}
