package scraper

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"

	"github.com/folio-cli/folio/filesystem"
	"github.com/folio-cli/folio/network"
)

// maxScriptSize bounds downloaded scripts.
const maxScriptSize = 1 << 20

// Install downloads the script at remoteURL into localPath.
// The file is only replaced when its content changed; changed reports whether it was.
func Install(ctx context.Context, remoteURL, localPath string) (changed bool, err error) {
	req, err := network.NewRequest(ctx, http.MethodGet, remoteURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := network.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("download %s: unexpected status %s", remoteURL, resp.Status)
	}

	remote, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize))
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil {
		if a, b := sha256.Sum256(local), sha256.Sum256(remote); bytes.Equal(a[:], b[:]) {
			return false, nil
		}
	}

	if err := filesystem.WriteAtomic(localPath, remote); err != nil {
		return false, err
	}

	Forget(localPath)
	return true, nil
}
