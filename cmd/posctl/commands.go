package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"bistro/config"
	"bistro/internal/dispatch"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/api"
	logs "bistro/internal/infra/log"
	"bistro/internal/usecase"
	"bistro/internal/usecase/impl"

	"github.com/pkg/errors"
)

// toolbox bundles the client-side services a subcommand may need. Everything
// is built once per invocation; the gateways are stateless.
type toolbox struct {
	logger   *slog.Logger
	runner   *dispatch.Runner
	auth     usecase.AuthUsecase
	catalogs map[entity.Kind]usecase.CatalogUsecase
	billing  usecase.BillingUsecase
	reports  usecase.ReportUsecase
	cashiers repository.CashierRepository
	menu     repository.MenuRepository
}

func buildToolbox() (*toolbox, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	if cfg.API == nil || cfg.API.BaseURL == "" {
		return nil, errors.New("api.baseUrl is not configured")
	}

	client := api.NewWithConnectTimeout(cfg.API.BaseURL, logger, cfg.API.ConnectTimeout)

	appetizers := api.NewAppetizerGateway(client)
	drinks := api.NewDrinkGateway(client)
	mainCourses := api.NewMainCourseGateway(client)
	cashiers := api.NewCashierGateway(client)
	sessions := api.NewSessionGateway(client)
	menu := api.NewMenuGateway(client)

	receiptsDir := "receipts"
	if cfg.Billing != nil && cfg.Billing.ReceiptsDir != "" {
		receiptsDir = cfg.Billing.ReceiptsDir
	}

	return &toolbox{
		logger: logger,
		runner: dispatch.New(logger),
		auth:   impl.NewAuthService(sessions, logger),
		catalogs: map[entity.Kind]usecase.CatalogUsecase{
			entity.KindAppetizer:  impl.NewAppetizerService(appetizers, logger),
			entity.KindDrink:      impl.NewDrinkService(drinks, logger),
			entity.KindMainCourse: impl.NewMainCourseService(mainCourses, logger),
		},
		billing:  impl.NewBillingService(receiptsDir, logger),
		reports:  impl.NewReportService(cashiers, appetizers, drinks, mainCourses, logger),
		cashiers: cashiers,
		menu:     menu,
	}, nil
}

func (tb *toolbox) catalog(kind string) (usecase.CatalogUsecase, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	return tb.catalogs[k], nil
}

func parseKind(kind string) (entity.Kind, error) {
	switch kind {
	case "appetizer":
		return entity.KindAppetizer, nil
	case "drink":
		return entity.KindDrink, nil
	case "maincourse":
		return entity.KindMainCourse, nil
	default:
		return 0, errors.Errorf("unknown kind %q (want appetizer, drink or maincourse)", kind)
	}
}

func runSubcommand(ctx context.Context, flags *posFlags) error {
	sub := os.Args[1]
	args := os.Args[2:]

	tb, err := buildToolbox()
	if err != nil {
		return err
	}
	defer tb.runner.Drain()

	switch sub {
	case "login":
		if err := flags.Login.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runLogin(ctx, tb, *flags.Login.user, *flags.Login.pass)
	case "list":
		if err := flags.List.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runList(ctx, tb, *flags.List.kind)
	case "get":
		if err := flags.Get.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runGet(ctx, tb, *flags.Get.kind, *flags.Get.id)
	case "add":
		if err := flags.Add.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runAdd(ctx, tb, *flags.Add.kind, *flags.Add.name, *flags.Add.price)
	case "update":
		if err := flags.Update.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runUpdate(ctx, tb, *flags.Update.kind, *flags.Update.id, *flags.Update.name, *flags.Update.price)
	case "delete":
		if err := flags.Delete.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runDelete(ctx, tb, *flags.Delete.kind, *flags.Delete.id)
	case "cashiers":
		if err := flags.Cashiers.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runCashiers(ctx, tb, *flags.Cashiers.name)
	case "status":
		if err := flags.Status.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runStatus(ctx, tb)
	case "bill":
		if err := flags.Bill.cmd.Parse(args); err != nil {
			return errors.WithStack(err)
		}

		return runBill(tb, *flags.Bill.sum, *flags.Bill.receipt)
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", sub)
	}
}

// runLogin is a critical operation: a failure aborts with a non-zero exit.
func runLogin(ctx context.Context, tb *toolbox, user, pass string) error {
	future := tb.runner.Critical(ctx, "login", func(ctx context.Context) error {
		u, err := tb.auth.Authenticate(ctx, user, pass)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", u.Username, u.Role)
		if u.IsAdmin() {
			fmt.Println("Administrator access granted.")
		}

		return nil
	})

	return future.Wait()
}

func runList(ctx context.Context, tb *toolbox, kind string) error {
	if kind == "all" {
		menu, err := tb.menu.FullMenu(ctx)
		if err != nil {
			return err
		}

		for _, item := range menu.Appetizers {
			printItem(item)
		}
		for _, item := range menu.Drinks {
			printItem(item)
		}
		for _, item := range menu.MainCourses {
			printItem(item)
		}
		fmt.Printf("%d item(s)\n", menu.TotalItems)

		return nil
	}

	catalog, err := tb.catalog(kind)
	if err != nil {
		return err
	}

	items, err := catalog.List(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		printItem(item)
	}
	fmt.Printf("%d %s(s)\n", len(items), catalog.Kind())

	return nil
}

func runGet(ctx context.Context, tb *toolbox, kind string, id int64) error {
	catalog, err := tb.catalog(kind)
	if err != nil {
		return err
	}

	item, ok, err := catalog.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("No %s with id %d\n", catalog.Kind(), id)

		return nil
	}

	printItem(*item)

	return nil
}

func runAdd(ctx context.Context, tb *toolbox, kind, name, price string) error {
	catalog, err := tb.catalog(kind)
	if err != nil {
		return err
	}

	future := tb.runner.Critical(ctx, "add", func(ctx context.Context) error {
		created, err := catalog.Add(ctx, name, price)
		if err != nil {
			return err
		}

		printItem(*created)

		return nil
	})

	return future.Wait()
}

func runUpdate(ctx context.Context, tb *toolbox, kind string, id int64, name, price string) error {
	catalog, err := tb.catalog(kind)
	if err != nil {
		return err
	}

	var idPtr *int64
	if id > 0 {
		idPtr = &id
	}

	future := tb.runner.Critical(ctx, "update", func(ctx context.Context) error {
		updated, err := catalog.Update(ctx, idPtr, name, price)
		if err != nil {
			return err
		}

		printItem(*updated)

		return nil
	})

	return future.Wait()
}

func runDelete(ctx context.Context, tb *toolbox, kind string, id int64) error {
	catalog, err := tb.catalog(kind)
	if err != nil {
		return err
	}

	future := tb.runner.Critical(ctx, "delete", func(ctx context.Context) error {
		return catalog.Remove(ctx, id)
	})
	if err := future.Wait(); err != nil {
		return err
	}

	fmt.Printf("Deleted %s %d\n", catalog.Kind(), id)

	return nil
}

func runCashiers(ctx context.Context, tb *toolbox, name string) error {
	if name != "" {
		cashier, ok, err := tb.cashiers.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No cashier named %q\n", name)

			return nil
		}
		fmt.Printf("%d\t%s\t%d\n", cashier.ID, cashier.Name, cashier.Salary)

		return nil
	}

	cashiers, err := tb.reports.CashierInfo(ctx)
	if err != nil {
		return err
	}
	for _, cashier := range cashiers {
		fmt.Printf("%d\t%s\t%d\n", cashier.ID, cashier.Name, cashier.Salary)
	}

	return nil
}

// runStatus treats every probe as informational: a failure is logged and the
// command still exits zero.
func runStatus(ctx context.Context, tb *toolbox) error {
	tb.runner.Background(ctx, "menu-status", func(ctx context.Context) error {
		msg, err := tb.reports.MenuStatus(ctx)
		if err != nil {
			return err
		}

		fmt.Println(msg)

		return nil
	})

	tb.runner.Background(ctx, "health", func(ctx context.Context) error {
		health, err := tb.menu.Health(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Service: %s (%s)\n", health.Service, health.Status)

		return nil
	})

	tb.runner.Background(ctx, "db-check", func(ctx context.Context) error {
		db, err := tb.menu.DBCheck(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Database: %s (%s)\n", db.Database, db.Status)

		return nil
	})

	tb.runner.Drain()

	return nil
}

func runBill(tb *toolbox, sum float64, receiptNo int) error {
	bill := tb.billing.CalculateBill(sum)

	fmt.Printf("Subtotal: %s SR\n", formatAmount(bill.Subtotal))
	fmt.Printf("VAT:      %s SR\n", formatAmount(bill.VAT))
	fmt.Printf("Total:    %s SR\n", formatAmount(bill.Total))

	if receiptNo > 0 {
		if err := tb.billing.GenerateReceiptFile(receiptNo, bill); err != nil {
			return err
		}
		fmt.Printf("Receipt %d written\n", receiptNo)
	}

	return nil
}

func printItem(item entity.MenuItem) {
	id := int64(0)
	if item.Persisted() {
		id = *item.ID
	}
	fmt.Printf("%d\t%s\t%d\n", id, item.Name, item.Price)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
