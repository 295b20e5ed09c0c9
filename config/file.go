package config

import "github.com/automoto/jumpcar/shared/tuning"

// LoadFile overrides the vehicle and logging globals with the YAML file at
// path. Keys the file leaves out keep their current values. On error the
// globals are unchanged; a missing file wraps fs.ErrNotExist.
func LoadFile(path string) error {
	s := Tuning()
	if err := tuning.LoadFile(path, &s); err != nil {
		return err
	}
	applyTuning(s)
	return nil
}
