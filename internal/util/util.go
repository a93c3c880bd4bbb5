package util

import (
	"os"

	"github.com/spf13/afero"
)

func PathExists(fs afero.Fs, loc string) (bool, error) {
	if _, err := fs.Stat(loc); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		} else {
			return false, err
		}
	}
	return true, nil
}
