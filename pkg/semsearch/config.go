package semsearch

import "github.com/BurntSushi/toml"

// LoadConfig reads Options from a TOML file. Fields absent from the file
// keep their defaults.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
