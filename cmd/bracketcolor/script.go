package main

import "gopkg.in/yaml.v3"

// script is the YAML shape the replay command reads: an initial document
// plus a sequence of steps, each a batch of edits (in the previous step's
// coordinates) and the resulting full text. A step's edits must be listed
// right-to-left (descending oldStart), matching EditMapper's contract.
type script struct {
	Initial string `yaml:"initial"`
	Steps   []struct {
		Edits []struct {
			OldStart [2]int `yaml:"oldStart"`
			OldEnd   [2]int `yaml:"oldEnd"`
			NewText  string `yaml:"newText"`
		} `yaml:"edits"`
		Text string `yaml:"text"`
	} `yaml:"steps"`
}

func parseScript(data []byte) (*script, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
