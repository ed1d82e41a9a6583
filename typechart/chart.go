// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package typechart

import "github.com/openbattle/engine/rational"

// effectiveness is keyed [attacking][defending] and holds only the
// exceptions to the default 1x multiplier: 2 for super effective, 1 (as
// numerator 1, denominator 2) for not very effective, 0 for immune.
var effectiveness = map[Type]map[Type]rational.Fraction{
	Normal: {
		Rock: rational.New(1, 2), Ghost: rational.New(0, 1), Steel: rational.New(1, 2),
	},
	Fire: {
		Fire: rational.New(1, 2), Water: rational.New(1, 2), Grass: rational.Whole(2),
		Ice: rational.Whole(2), Bug: rational.Whole(2), Rock: rational.New(1, 2),
		Dragon: rational.New(1, 2), Steel: rational.Whole(2),
	},
	Water: {
		Fire: rational.Whole(2), Water: rational.New(1, 2), Grass: rational.New(1, 2),
		Ground: rational.Whole(2), Rock: rational.Whole(2), Dragon: rational.New(1, 2),
	},
	Electric: {
		Water: rational.Whole(2), Electric: rational.New(1, 2), Grass: rational.New(1, 2),
		Ground: rational.Whole(0), Flying: rational.Whole(2), Dragon: rational.New(1, 2),
	},
	Grass: {
		Fire: rational.New(1, 2), Water: rational.Whole(2), Grass: rational.New(1, 2),
		Poison: rational.New(1, 2), Ground: rational.Whole(2), Flying: rational.New(1, 2),
		Bug: rational.New(1, 2), Rock: rational.Whole(2), Dragon: rational.New(1, 2),
		Steel: rational.New(1, 2),
	},
	Ice: {
		Fire: rational.New(1, 2), Water: rational.New(1, 2), Grass: rational.Whole(2),
		Ice: rational.New(1, 2), Ground: rational.Whole(2), Flying: rational.Whole(2),
		Dragon: rational.Whole(2), Steel: rational.New(1, 2),
	},
	Fighting: {
		Normal: rational.Whole(2), Ice: rational.Whole(2), Poison: rational.New(1, 2),
		Flying: rational.New(1, 2), Psychic: rational.New(1, 2), Bug: rational.New(1, 2),
		Rock: rational.Whole(2), Ghost: rational.Whole(0), Dark: rational.Whole(2),
		Steel: rational.Whole(2), Fairy: rational.New(1, 2),
	},
	Poison: {
		Grass: rational.Whole(2), Poison: rational.New(1, 2), Ground: rational.New(1, 2),
		Rock: rational.New(1, 2), Ghost: rational.New(1, 2), Steel: rational.Whole(0),
		Fairy: rational.Whole(2),
	},
	Ground: {
		Fire: rational.Whole(2), Electric: rational.Whole(2), Grass: rational.New(1, 2),
		Poison: rational.Whole(2), Flying: rational.Whole(0), Bug: rational.New(1, 2),
		Rock: rational.Whole(2), Steel: rational.Whole(2),
	},
	Flying: {
		Electric: rational.New(1, 2), Grass: rational.Whole(2), Fighting: rational.Whole(2),
		Bug: rational.Whole(2), Rock: rational.New(1, 2), Steel: rational.New(1, 2),
	},
	Psychic: {
		Fighting: rational.Whole(2), Poison: rational.Whole(2), Psychic: rational.New(1, 2),
		Dark: rational.Whole(0), Steel: rational.New(1, 2),
	},
	Bug: {
		Fire: rational.New(1, 2), Grass: rational.Whole(2), Fighting: rational.New(1, 2),
		Poison: rational.New(1, 2), Flying: rational.New(1, 2), Psychic: rational.Whole(2),
		Ghost: rational.New(1, 2), Dark: rational.Whole(2), Steel: rational.New(1, 2),
		Fairy: rational.New(1, 2),
	},
	Rock: {
		Fire: rational.Whole(2), Ice: rational.Whole(2), Fighting: rational.New(1, 2),
		Ground: rational.New(1, 2), Flying: rational.Whole(2), Bug: rational.Whole(2),
		Steel: rational.New(1, 2),
	},
	Ghost: {
		Normal: rational.Whole(0), Psychic: rational.Whole(2), Ghost: rational.Whole(2),
		Dark: rational.New(1, 2),
	},
	Dragon: {
		Dragon: rational.Whole(2), Steel: rational.New(1, 2), Fairy: rational.Whole(0),
	},
	Dark: {
		Fighting: rational.New(1, 2), Psychic: rational.Whole(2), Ghost: rational.Whole(2),
		Dark: rational.New(1, 2), Fairy: rational.New(1, 2),
	},
	Steel: {
		Fire: rational.New(1, 2), Water: rational.New(1, 2), Electric: rational.New(1, 2),
		Ice: rational.Whole(2), Rock: rational.Whole(2), Steel: rational.New(1, 2),
		Fairy: rational.Whole(2),
	},
	Fairy: {
		Fire: rational.New(1, 2), Fighting: rational.Whole(2), Poison: rational.New(1, 2),
		Dragon: rational.Whole(2), Dark: rational.Whole(2), Steel: rational.New(1, 2),
	},
}

// Lookup returns the base chart multiplier of attacking against defending,
// defaulting to 1x for any pair not listed as an exception. Stellar as a
// defending type is always neutral; as an attacking type it is never the
// move's chart type (Terastallization to Stellar keeps the move's own
// type for chart purposes and only affects STAB, per §9).
func Lookup(attacking, defending Type) rational.Fraction {
	if attacking == Stellar || defending == Stellar {
		return rational.Whole(1)
	}
	if row, ok := effectiveness[attacking]; ok {
		if mult, ok := row[defending]; ok {
			return mult
		}
	}
	return rational.Whole(1)
}

// Effectiveness is the product of Lookup across every defending type,
// matching stage 7's "product over defender type(s) of chart lookup".
func Effectiveness(attacking Type, defending ...Type) rational.Fraction {
	total := rational.Whole(1)
	for _, d := range defending {
		total = total.Mul(Lookup(attacking, d))
	}
	return total
}
