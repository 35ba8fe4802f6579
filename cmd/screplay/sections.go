package main

import (
	"fmt"

	"github.com/scrparse/screplay/rep"
)

// validSections are the top-level sections "parse" knows how to select.
var validSections = map[string]bool{"header": true, "gameinfo": true, "frames": true}

// sectionSet validates and expands a config's Sections list into a lookup
// set. An empty list means all sections.
func sectionSet(sections []string) (map[string]bool, error) {
	if len(sections) == 0 {
		return map[string]bool{"header": true, "gameinfo": true, "frames": true}, nil
	}
	set := make(map[string]bool, len(sections))
	for _, s := range sections {
		if !validSections[s] {
			return nil, fmt.Errorf("unknown section %q (want header, gameinfo, or frames)", s)
		}
		set[s] = true
	}
	return set, nil
}

// filterSections returns a shallow copy of replay with the fields for any
// unselected section zeroed out, mirroring the teacher CLI's "zero values
// the user does not wish to see" step before encoding.
func filterSections(replay *rep.ParsedReplay, sections map[string]bool) *rep.ParsedReplay {
	filtered := *replay
	if !sections["header"] {
		filtered.Header = nil
	}
	if !sections["gameinfo"] {
		filtered.GameInfo = nil
	}
	if !sections["frames"] {
		filtered.Frames = nil
	}
	return &filtered
}
