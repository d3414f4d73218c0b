// Package mapperdb provides a reference table of known NES mapper chips.
// Mapper numbers follow the community assignments documented at
// https://www.nesdev.org/wiki/Mapper
package mapperdb

// Info describes a mapper chip and games known to use it.
type Info struct {
	ID       uint8
	Name     string
	Examples []string
}

// unknownName marks mapper IDs that have no reference table entry.
const unknownName = "Unknown"

// Known reports whether the info came from a reference table entry.
func (i Info) Known() bool {
	return i.Name != unknownName
}

// Lookup resolves a mapper ID against the reference table. IDs without
// an entry resolve to the "Unknown" sentinel instead of failing, newer
// and obscure mappers are common and must not abort analysis.
func Lookup(id uint8) Info {
	info, ok := mappers[id]
	if !ok {
		return Info{ID: id, Name: unknownName}
	}
	info.ID = id
	return info
}

// mappers is populated once at process start and never mutated,
// concurrent reads need no synchronization.
var mappers = map[uint8]Info{
	0: {
		Name:     "NROM",
		Examples: []string{"Super Mario Bros.", "Donkey Kong", "Excitebike"},
	},
	1: {
		Name:     "MMC1",
		Examples: []string{"The Legend of Zelda", "Metroid", "Mega Man 2"},
	},
	2: {
		Name:     "UxROM",
		Examples: []string{"Castlevania", "Contra", "Mega Man"},
	},
	3: {
		Name:     "CNROM",
		Examples: []string{"Solomon's Key", "Arkanoid", "Paperboy"},
	},
	4: {
		Name:     "MMC3",
		Examples: []string{"Super Mario Bros. 3", "Mega Man 3", "Kirby's Adventure"},
	},
	5: {
		Name:     "MMC5",
		Examples: []string{"Castlevania III: Dracula's Curse", "Laser Invasion"},
	},
	7: {
		Name:     "AxROM",
		Examples: []string{"Battletoads", "Marble Madness", "Wizards & Warriors"},
	},
	9: {
		Name:     "MMC2",
		Examples: []string{"Mike Tyson's Punch-Out!!"},
	},
	10: {
		Name:     "MMC4",
		Examples: []string{"Fire Emblem", "Famicom Wars"},
	},
	11: {
		Name:     "Color Dreams",
		Examples: []string{"Crystal Mines", "Bible Adventures"},
	},
	13: {
		Name:     "CPROM",
		Examples: []string{"Videomation"},
	},
	34: {
		Name:     "BNROM / NINA-001",
		Examples: []string{"Deadly Towers", "Impossible Mission II"},
	},
	64: {
		Name:     "RAMBO-1",
		Examples: []string{"Klax", "Skull & Crossbones"},
	},
	66: {
		Name:     "GxROM",
		Examples: []string{"Super Mario Bros. + Duck Hunt", "Dragon Power"},
	},
	69: {
		Name:     "Sunsoft FME-7",
		Examples: []string{"Batman: Return of the Joker", "Gimmick!"},
	},
	71: {
		Name:     "Camerica BF909x",
		Examples: []string{"Fire Hawk", "Micro Machines"},
	},
	79: {
		Name:     "NINA-003/006",
		Examples: []string{"Krazy Kreatures", "Tiles of Fate"},
	},
	118: {
		Name:     "TxSROM",
		Examples: []string{"Armadillo", "NES Play Action Football"},
	},
	119: {
		Name:     "TQROM",
		Examples: []string{"High Speed", "Pin*Bot"},
	},
	228: {
		Name:     "Active Enterprises",
		Examples: []string{"Action 52", "Cheetahmen II"},
	},
}
