package fixtures

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Load reads a YAML fixture file and builds a Catalog from it.
//
// The file has the same shape as File:
//
//	guildhalls:
//	  DEV:
//	    users:
//	      Test User:
//	        ranking: [{pos: 1, time: "01:00,000", name: First, ...}]
//	        you: []
//	cups:
//	  - name: TYRIA CUP
//	    maps: [TYRIA GENDARRAN]
//	checkpoints:
//	  - {step: 1, name: "*", x: 2.0, y: 3.0, z: 4.0}
//
// Note that the wildcard step name must be quoted in YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read fixtures file")
	}
	return Parse(data)
}

// Parse builds a Catalog from YAML bytes. Unknown keys are rejected so that a
// typo in a fixture file fails at startup instead of silently serving defaults.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode fixtures")
	}
	c, err := f.Build()
	if err != nil {
		return nil, errors.Wrap(err, "invalid fixtures")
	}
	return c, nil
}
