package model

import "time"

// MergeOutcome describes a completed consolidation of several result files.
type MergeOutcome struct {
	RunName     string    `yaml:"run_name"`
	Directories []Path    `yaml:"directories"`
	Start       time.Time `yaml:"start"`
	End         time.Time `yaml:"end"`
	Inputs      []Path    `yaml:"inputs"`
	Excluded    []Path    `yaml:"excluded,omitempty"` // result files dropped by validation or timestamp checks
	Output      Path      `yaml:"output"`
	Log         Path      `yaml:"log"`
	Report      Path      `yaml:"report"`
	Manifest    Path      `yaml:"-"`
}
