package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coinkeeper/internal/client/models"
)

func (a *App) readTransactionDraft() (*models.TransactionDraft, error) {
	kind, err := GetSimpleText(a.reader, "-Type (income/expense)")
	if err != nil {
		return nil, err
	}

	amount, err := GetAmount(a.reader, "-Amount")
	if err != nil {
		return nil, err
	}

	category, err := GetSimpleText(a.reader, "-Category name")
	if err != nil {
		return nil, err
	}

	date, err := GetDate(a.reader, "-Date (YYYY-MM-DD, empty for today)")
	if err != nil {
		return nil, err
	}

	comment, err := GetSimpleText(a.reader, "-Comment (optional)")
	if err != nil {
		return nil, err
	}

	return &models.TransactionDraft{
		Type:     models.TransactionType(strings.TrimSpace(kind)),
		Amount:   amount,
		Category: category,
		Date:     date,
		Comment:  comment,
	}, nil
}

func (a *App) addTransaction(ctx context.Context) {
	draft, err := a.readTransactionDraft()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	created, err := a.transactions.Create(ctx, *draft)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Added %s %s %.2f (%s) id=%s\n", created.Date, created.Type, created.Amount, created.Category, created.ID)
}

func (a *App) listTransactions(ctx context.Context) {
	items, err := a.transactions.FetchAll(ctx)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}

	if len(items) == 0 {
		fmt.Println("No transactions yet")
		return
	}
	for _, t := range items {
		comment := ""
		if t.Comment != "" {
			comment = " # " + t.Comment
		}
		fmt.Printf("%s  %-8s %10.2f  %-20s %s%s\n", t.Date, t.Type, t.Amount, t.Category, t.ID, comment)
	}
}

func (a *App) editTransaction(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "-Enter transaction id to edit")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	draft, err := a.readTransactionDraft()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	updated, err := a.transactions.Update(ctx, id, *draft)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Updated %s\n", updated.ID)
}

func (a *App) deleteTransaction(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "-Enter transaction id to delete")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	if _, err := a.transactions.Remove(ctx, id); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Printf("Deleted %s\n", id)
}
