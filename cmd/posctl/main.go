// Command posctl is the operator CLI for the catalog store. It speaks the
// store's HTTP API through the same gateways the POS screens use.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

// Supported subcommands:
// - login:    Check credentials against the store
// - list:     List menu items of one kind
// - get:      Fetch one menu item by id
// - add:      Create a menu item
// - update:   Replace a menu item
// - delete:   Remove a menu item
// - cashiers: List cashiers, or look one up by name
// - status:   Report menu counts and store health
// - bill:     Compute a bill and optionally write its receipt

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	getCmd := flag.NewFlagSet("get", flag.ExitOnError)
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	cashiersCmd := flag.NewFlagSet("cashiers", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)
	billCmd := flag.NewFlagSet("bill", flag.ExitOnError)

	loginUser := loginCmd.String("user", "", "Username")
	loginPass := loginCmd.String("pass", "", "Password")

	listKind := listCmd.String("kind", "drink", "Item kind (appetizer, drink, maincourse, all)")

	getKind := getCmd.String("kind", "drink", "Item kind")
	getID := getCmd.Int64("id", 0, "Item id")

	addKind := addCmd.String("kind", "drink", "Item kind")
	addName := addCmd.String("name", "", "Item name")
	addPrice := addCmd.String("price", "", "Item price (whole number)")

	updateKind := updateCmd.String("kind", "drink", "Item kind")
	updateID := updateCmd.Int64("id", 0, "Item id")
	updateName := updateCmd.String("name", "", "Item name")
	updatePrice := updateCmd.String("price", "", "Item price (whole number)")

	cashierName := cashiersCmd.String("name", "", "Look up a single cashier by name")

	deleteKind := deleteCmd.String("kind", "drink", "Item kind")
	deleteID := deleteCmd.Int64("id", 0, "Item id")

	billSum := billCmd.Float64("sum", 0, "Items total")
	billReceipt := billCmd.Int("receipt", 0, "Receipt number; when set, the receipt file is written")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := posFlags{
		Login:    loginFlags{cmd: loginCmd, user: loginUser, pass: loginPass},
		List:     listFlags{cmd: listCmd, kind: listKind},
		Get:      getFlags{cmd: getCmd, kind: getKind, id: getID},
		Add:      addFlags{cmd: addCmd, kind: addKind, name: addName, price: addPrice},
		Update:   updateFlags{cmd: updateCmd, kind: updateKind, id: updateID, name: updateName, price: updatePrice},
		Delete:   deleteFlags{cmd: deleteCmd, kind: deleteKind, id: deleteID},
		Cashiers: cashiersFlags{cmd: cashiersCmd, name: cashierName},
		Status:   statusFlags{cmd: statusCmd},
		Bill:     billFlags{cmd: billCmd, sum: billSum, receipt: billReceipt},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type posFlags struct {
	Login    loginFlags
	List     listFlags
	Get      getFlags
	Add      addFlags
	Update   updateFlags
	Delete   deleteFlags
	Cashiers cashiersFlags
	Status   statusFlags
	Bill     billFlags
}

type loginFlags struct {
	cmd  *flag.FlagSet
	user *string
	pass *string
}

type listFlags struct {
	cmd  *flag.FlagSet
	kind *string
}

type getFlags struct {
	cmd  *flag.FlagSet
	kind *string
	id   *int64
}

type addFlags struct {
	cmd   *flag.FlagSet
	kind  *string
	name  *string
	price *string
}

type updateFlags struct {
	cmd   *flag.FlagSet
	kind  *string
	id    *int64
	name  *string
	price *string
}

type deleteFlags struct {
	cmd  *flag.FlagSet
	kind *string
	id   *int64
}

type cashiersFlags struct {
	cmd  *flag.FlagSet
	name *string
}

type statusFlags struct {
	cmd *flag.FlagSet
}

type billFlags struct {
	cmd     *flag.FlagSet
	sum     *float64
	receipt *int
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: posctl <subcommand> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Subcommands:")
	fmt.Fprintln(os.Stderr, "  login     Check credentials against the store")
	fmt.Fprintln(os.Stderr, "  list      List menu items of one kind")
	fmt.Fprintln(os.Stderr, "  get       Fetch one menu item by id")
	fmt.Fprintln(os.Stderr, "  add       Create a menu item")
	fmt.Fprintln(os.Stderr, "  update    Replace a menu item")
	fmt.Fprintln(os.Stderr, "  delete    Remove a menu item")
	fmt.Fprintln(os.Stderr, "  cashiers  List cashiers, or look one up by name")
	fmt.Fprintln(os.Stderr, "  status    Report menu counts and store health")
	fmt.Fprintln(os.Stderr, "  bill      Compute a bill and optionally write its receipt")
}
