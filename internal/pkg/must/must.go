// Package must provides wrappers panicking on error.
package must

import (
	"encoding/json"
	"gopkg.in/yaml.v3"
	"os"
)

// PanicIf will call panic(err) in case given err is not nil.
func PanicIf(err error) {
	if err != nil {
		panic(err)
	}
}

// WriteFile is a wrapper for os.WriteFile.
func WriteFile(name string, buf []byte, perm os.FileMode) {
	err := os.WriteFile(name, buf, perm)
	PanicIf(err)
}

// UnmarshalYaml is a wrapper for yaml.Unmarshal.
func UnmarshalYaml(data []byte, v interface{}) {
	err := yaml.Unmarshal(data, v)
	PanicIf(err)
}

// MarshalYaml is a wrapper for yaml.Marshal.
func MarshalYaml(v interface{}) []byte {
	data, err := yaml.Marshal(v)
	PanicIf(err)
	return data
}

// MarshalJson is a wrapper for json.Marshal.
func MarshalJson(v interface{}) []byte {
	data, err := json.Marshal(v)
	PanicIf(err)
	return data
}
