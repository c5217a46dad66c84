package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modu-ai/switch/internal/defs"
	"github.com/modu-ai/switch/internal/store"
)

// @MX:ANCHOR: [AUTO] 마커 파일 기준 프로젝트 루트 탐색 함수입니다.
// @MX:REASON: [AUTO] info 명령과 디렉터리 기본값 처리에서 사용됩니다
// FindProjectRoot locates the nearest directory at or above start that
// contains a marker file. An empty start means the current working directory.
// When no marker is found the error wraps store.ErrNotAProject.
func FindProjectRoot(start string) (string, error) {
	absDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	dir := absDir
	for {
		if info, err := os.Stat(filepath.Join(dir, defs.MarkerFile)); err == nil && info.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &store.NotAProjectError{Dir: absDir}
		}
		dir = parent
	}
}

// FindProjectRootOrCurrent is like FindProjectRoot but falls back to the
// absolute form of start when no marker exists above it.
func FindProjectRootOrCurrent(start string) (string, error) {
	if root, err := FindProjectRoot(start); err == nil {
		return root, nil
	}
	return filepath.Abs(start)
}
