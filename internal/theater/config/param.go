package config

import (
	_ "embed"
)

//go:embed param_default.yaml
var ParamDefaultFile []byte

type Param struct {
	Movie    string            `yaml:"movie"`
	Devices  DeviceNames       `yaml:"devices"`
	Settings map[string]string `yaml:"settings"`
}

type DeviceNames struct {
	Amplifier string `yaml:"amplifier"`
	Player    string `yaml:"player"`
	Projector string `yaml:"projector"`
	Screen    string `yaml:"screen"`
	Lights    string `yaml:"lights"`
	Popper    string `yaml:"popper"`
}
