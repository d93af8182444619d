package deck

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
)

// SyncRepo clones a git repository to localPath, or pulls the latest
// changes when a clone already exists there. Progress output goes to
// w; pass nil to silence it.
func SyncRepo(url, localPath string, w io.Writer) error {
	_, err := os.Stat(localPath)
	switch {
	case os.IsNotExist(err):
		_, err := git.PlainClone(localPath, false, &git.CloneOptions{
			URL:      url,
			Depth:    1,
			Progress: w,
		})
		if err != nil {
			return fmt.Errorf("clone %s: %w", url, err)
		}
	case err == nil:
		repo, err := git.PlainOpen(localPath)
		if err != nil {
			return fmt.Errorf("open repo at %s: %w", localPath, err)
		}
		worktree, err := repo.Worktree()
		if err != nil {
			return fmt.Errorf("worktree for %s: %w", localPath, err)
		}
		err = worktree.Pull(&git.PullOptions{
			RemoteName: "origin",
			Progress:   w,
		})
		if err != nil && err != git.NoErrAlreadyUpToDate {
			return fmt.Errorf("pull %s: %w", localPath, err)
		}
	default:
		return fmt.Errorf("stat %s: %w", localPath, err)
	}

	return nil
}
