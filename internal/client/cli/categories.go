package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
)

func (a *App) readCategoryDraft() (*models.CategoryDraft, error) {
	name, err := GetSimpleText(a.reader, "-Category name")
	if err != nil {
		return nil, err
	}
	icon, err := GetSimpleText(a.reader, "-Icon (optional, e.g. an emoji)")
	if err != nil {
		return nil, err
	}
	color, err := GetSimpleText(a.reader, "-Color (optional, hex like #FF8042)")
	if err != nil {
		return nil, err
	}
	return &models.CategoryDraft{Name: name, Icon: icon, Color: color}, nil
}

func (a *App) addCategory(ctx context.Context) {
	draft, err := a.readCategoryDraft()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	created, err := a.categories.Create(ctx, *draft)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Added category %s id=%s\n", created.Name, created.ID)
}

func (a *App) listCategories(ctx context.Context) {
	items, err := a.categories.FetchAll(ctx)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	if len(items) == 0 {
		fmt.Println("No categories yet")
		return
	}
	for _, c := range items {
		fmt.Printf("%-3s %-20s %-8s %s\n", c.Icon, c.Name, c.Color, c.ID)
	}
}

func (a *App) editCategory(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "-Enter category id to edit")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	draft, err := a.readCategoryDraft()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	updated, err := a.categories.Update(ctx, id, *draft)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Updated %s\n", updated.ID)
}

func (a *App) deleteCategory(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "-Enter category id to delete")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	// Transactions referencing the category's name keep it; they show up in
	// statistics under an "Uncategorized (...)" bucket afterwards.
	if _, err := a.categories.Remove(ctx, id); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Deleted %s\n", id)
}
