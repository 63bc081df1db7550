package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if id := a.session.Identity(); id != nil {
		return fmt.Sprintf("(%s)", id.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to CoinKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("ck %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: add, list, edit, delete, addcat, cats, editcat, delcat, stats, balance, refresh, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)

		case "add":
			a.addTransaction(ctx)
		case "list":
			a.listTransactions(ctx)
		case "edit":
			a.editTransaction(ctx)
		case "delete":
			a.deleteTransaction(ctx)

		case "addcat":
			a.addCategory(ctx)
		case "cats", "categories":
			a.listCategories(ctx)
		case "editcat":
			a.editCategory(ctx)
		case "delcat":
			a.deleteCategory(ctx)

		case "stats":
			a.showStatistics(ctx)
		case "balance":
			a.showBalance(ctx)
		case "refresh":
			a.refresh(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) refresh(ctx context.Context) {
	if err := a.syncer.Refresh(ctx); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return
	}
	fmt.Println("Collections refreshed")
}
