package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates a new account.
// A successful registration also logs the user in. The password byte slice
// is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	a.userName = user.Name
	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and authenticates against the server.
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	a.userName = user.Name
	log.Printf("Login successfull")
	return nil
}

// Logout discards the session token.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	return nil
}
