// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package typechart

// Type enumerates the 18 elemental types plus the Stellar marker used only
// by Terastallization.
type Type string

const (
	Normal   Type = "Normal"
	Fire     Type = "Fire"
	Water    Type = "Water"
	Electric Type = "Electric"
	Grass    Type = "Grass"
	Ice      Type = "Ice"
	Fighting Type = "Fighting"
	Poison   Type = "Poison"
	Ground   Type = "Ground"
	Flying   Type = "Flying"
	Psychic  Type = "Psychic"
	Bug      Type = "Bug"
	Rock     Type = "Rock"
	Ghost    Type = "Ghost"
	Dragon   Type = "Dragon"
	Dark     Type = "Dark"
	Steel    Type = "Steel"
	Fairy    Type = "Fairy"

	// Stellar is not a true elemental type: it only ever appears as a
	// Terastallization result and always has neutral (1x) matchups.
	Stellar Type = "Stellar"
)

// AllTypes lists the 18 elemental types in their canonical chart order
// (Stellar excluded: it never appears as a chart row or column).
var AllTypes = []Type{
	Normal, Fire, Water, Electric, Grass, Ice, Fighting, Poison, Ground,
	Flying, Psychic, Bug, Rock, Ghost, Dragon, Dark, Steel, Fairy,
}

// MoveCategory classifies a move's damage mechanic.
type MoveCategory string

const (
	Physical MoveCategory = "Physical"
	Special  MoveCategory = "Special"
	Status   MoveCategory = "Status"
)
