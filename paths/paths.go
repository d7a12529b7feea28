// This file is part of Ready.
//
// Ready is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ready is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ready.  If not, see <https://www.gnu.org/licenses/>.

// Package paths prepares paths to the emulator's resources: the preferences
// file, ROM images and recordings.
//
// If a directory called ".ready" exists in the current directory then that is
// the base path. Otherwise the user's config directory (os.UserConfigDir()) is
// used. On a Linux system the following:
//
//	p, _ := paths.ResourcePath("roms", "kernal")
//
// returns:
//
//	/home/user/.config/ready/roms/kernal
//
// The directories leading to the resource are created if necessary.
package paths

import (
	"os"
	"path/filepath"
)

const localResourcePath = ".ready"
const configResourcePath = "ready"

func basePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, configResourcePath), nil
}

// ResourcePath returns the path to the named resource in the subdirectory.
// Either argument can be empty.
func ResourcePath(subdir string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subdir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, file), nil
}
