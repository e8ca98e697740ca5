package life

import (
	"errors"
	"fmt"
	"strings"

	"termgol/pkg/core"
)

// ErrInvalidSetup is returned for unknown setup names.
var ErrInvalidSetup = errors.New("invalid setup")

const acorn = "" +
	" #     \n" +
	"   #   \n" +
	"##  ###\n"

const rPentonimo = "" +
	"## \n" +
	" ##\n" +
	" # \n"

const termgol = "" +
	"##### ##### ####  #   #  ####  ###  #    \n" +
	"  #   #     #   # ## ## #     #   # #    \n" +
	"  #   ####  ####  # # # #  ## #   # #    \n" +
	"  #   #     #  #  #   # #   # #   # #    \n" +
	"  #   ##### #   # #   #  ###   ###  #####\n"

// SetupKind selects how the grid is populated on resize and reseed.
type SetupKind int

const (
	SetupAcorn SetupKind = iota
	SetupBlank
	SetupRPentonimo
	SetupTermgol
	SetupSoup
	SetupText
)

var setupNames = map[SetupKind]string{
	SetupAcorn:      "acorn",
	SetupBlank:      "blank",
	SetupRPentonimo: "r-pentonimo",
	SetupTermgol:    "termgol",
	SetupSoup:       "soup",
	SetupText:       "text",
}

func (k SetupKind) String() string {
	if name, ok := setupNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SetupKind(%d)", int(k))
}

// ParseSetupKind resolves a preset name. Text setups are built from file
// content, not by name.
func ParseSetupKind(name string) (SetupKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range setupNames {
		if n == name && k != SetupText {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q: want acorn, blank, r-pentonimo, termgol or soup", ErrInvalidSetup, name)
}

// Setup describes the seed pattern. Width and Height apply to soups, Text to
// text setups.
type Setup struct {
	Kind   SetupKind
	Width  int
	Height int
	Text   string
}

// Image resolves the setup into a CellImage. Only soups draw from rng.
func (s Setup) Image(rng core.Rand) CellImage {
	switch s.Kind {
	case SetupAcorn:
		return ParseCellImage(acorn)
	case SetupRPentonimo:
		return ParseCellImage(rPentonimo)
	case SetupTermgol:
		return ParseCellImage(termgol)
	case SetupSoup:
		return Soup(s.Width, s.Height, rng)
	case SetupText:
		return ParseCellImage(s.Text)
	case SetupBlank:
		return CellImage{}
	default:
		return CellImage{}
	}
}
