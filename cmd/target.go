package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/The-Luminous-Group/google-sheets-api-integration/internal/domain"
)

const defaultSheetName = "Sheet1"

type target struct {
	id    domain.SpreadsheetID
	sheet string
}

// resolveTarget turns a CLI spreadsheet argument into a spreadsheet ID plus
// the sheet to operate on. The argument is an ID, a full URL, or the name of a
// saved alias; an explicit --sheet flag beats the alias default.
func resolveTarget(ctx context.Context, app *app, ref, sheetFlag string) (target, error) {
	if id, err := domain.ParseSpreadsheetRef(ref); err == nil {
		return target{id: id, sheet: pickSheet(sheetFlag, "")}, nil
	}

	alias, err := app.registry.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrAliasNotFound) {
			return target{}, fmt.Errorf("unknown spreadsheet %q: not an ID, URL or saved alias", ref)
		}
		return target{}, err
	}

	return target{id: alias.SpreadsheetID, sheet: pickSheet(sheetFlag, alias.Sheet)}, nil
}

func pickSheet(flagValue, aliasSheet string) string {
	if flagValue != "" {
		return flagValue
	}
	if aliasSheet != "" {
		return aliasSheet
	}
	return defaultSheetName
}
