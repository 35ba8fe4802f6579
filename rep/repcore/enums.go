// This file contains general enum types.

package repcore

import "fmt"

// Enum is the base / common part of enum types.
type Enum struct {
	// Name of the entity
	Name string
}

// String returns the string representation of the enum (the name).
// Defined with value receiver so this gets called even if a non-pointer is used.
func (e Enum) String() string {
	return e.Name
}

// UnknownEnum constructs a new Enum for an unknown entity with a name:
//
//	"Unknown 0xID"
//
// ID must be an integer number.
func UnknownEnum(ID any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", ID)}
}

// Engine is the StarCraft engine / extension the replay was recorded with.
type Engine struct {
	Enum

	// ID as it appears in replays
	ID int8

	// ShortName is a shorter name
	ShortName string
}

// Engines is an enumeration of the possible engines.
var Engines = []*Engine{
	{Enum{"StarCraft"}, 0x00, "SC"},
	{Enum{"Brood War"}, 0x01, "BW"},
}

// Named engines
var (
	EngineStarCraft = Engines[0]
	EngineBroodWar  = Engines[1]
)

// EngineByID returns the Engine for a given ID.
// A new Engine with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID).
func EngineByID(ID int8) *Engine {
	if ID >= 0 && int(ID) < len(Engines) {
		return Engines[ID]
	}
	return &Engine{UnknownEnum(ID), ID, "Unk"}
}

// Race describes a race.
type Race struct {
	Enum

	// ID as it appears in replays
	ID byte

	// Letter is the first letter of the race's name
	Letter rune
}

// Races is an enumeration of the possible races.
var Races = []*Race{
	{Enum{"Zerg"}, 0x00, 'Z'},
	{Enum{"Terran"}, 0x01, 'T'},
	{Enum{"Protoss"}, 0x02, 'P'},
}

// Named races
var (
	RaceZerg    = Races[0]
	RaceTerran  = Races[1]
	RaceProtoss = Races[2]
)

// RaceByID returns the Race for a given ID.
// A new Race with Unknown name is returned if one is not found
// for the given ID (preserving the unknown ID, per the replay's race byte).
func RaceByID(ID byte) *Race {
	if int(ID) < len(Races) {
		return Races[ID]
	}
	return &Race{UnknownEnum(ID), ID, 'U'}
}
