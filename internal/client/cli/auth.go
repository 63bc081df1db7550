package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "-Enter email")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	password, err := GetPassword()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	identity, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrAuth) || errors.Is(err, common.ErrValidation) {
			fmt.Printf("Login unsuccessful: %s\n", err.Error())
		} else {
			fmt.Printf("Login unsuccessful, server problem: %s\n", err.Error())
		}
		return
	}

	fmt.Printf("Logged in as %s\n", identity.Email)
}

func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "-Enter email")
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	password, err := GetPassword()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	confirmation, err := GetPassword()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if password != confirmation {
		fmt.Println("Passwords do not match")
		return
	}

	identity, err := a.session.Register(ctx, email, password)
	if err != nil {
		fmt.Printf("Registration unsuccessful: %s\n", err.Error())
		return
	}

	fmt.Printf("Registered and logged in as %s\n", identity.Email)
}

func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	fmt.Println("Logged out")
}

// restore re-validates a persisted token on startup. Being logged out here
// is a normal outcome and stays quiet; only a transport problem is worth a
// message.
func (a *App) restore(ctx context.Context) {
	identity, err := a.session.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if identity != nil {
		fmt.Printf("Welcome back, %s\n", identity.Email)
	}
}
