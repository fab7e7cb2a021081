package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lojahub/backoffice/internal/config"
	"github.com/lojahub/backoffice/internal/metrics"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/lojahub/backoffice/internal/services"
	"github.com/lojahub/backoffice/pkg/rest"
)

const usage = `usage:
  backoffice login <email> <senha>
  backoffice <clientes|produtos|categorias|pedidos> list
  backoffice <clientes|produtos|categorias|pedidos> get <id>
  backoffice <clientes|produtos|categorias|pedidos> delete <id>
  backoffice pedidos status <id> <PENDENTE|PAGO|CANCELADO>`

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// optional .env for local development
	_ = godotenv.Load()

	cfg := config.MustLoad()

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	api := rest.New(cfg.BaseURL(), cfg.API.Timeout)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())

			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				slog.Error("metrics server stopped", slog.String("error", err.Error()))
			}
		}()
	}

	slog.Info("back-office console started",
		slog.String("env", cfg.Env),
		slog.String("base_url", cfg.BaseURL()))

	ctx := context.Background()

	if err := run(ctx, api, os.Args[1:]); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, api rest.Client, args []string) error {
	customers := services.NewCustomerService(api)
	products := services.NewProductService(api)
	categories := services.NewCategoryService(api)
	orders := services.NewOrderService(api)

	if args[0] == "login" {
		if len(args) != 3 {
			return fmt.Errorf("%s", usage)
		}

		customer, err := customers.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}

		fmt.Printf("Bem vindo(a), %s!\n", customer.Name)

		return nil
	}

	entity, action := args[0], args[1]

	if entity == "pedidos" && action == "status" {
		if len(args) != 4 {
			return fmt.Errorf("%s", usage)
		}

		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[2])
		}

		status, err := models.ParseOrderStatus(args[3])
		if err != nil {
			return err
		}

		order, err := orders.Update(ctx, id, models.OrderUpdate{Status: &status})
		if err != nil {
			return err
		}

		return printJSON(order)
	}

	var id int64

	if action == "get" || action == "delete" {
		if len(args) != 3 {
			return fmt.Errorf("%s", usage)
		}

		parsed, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[2])
		}

		id = parsed
	}

	switch entity {
	case "clientes":
		return dispatch(ctx, action, id,
			func() (any, error) { return customers.List(ctx) },
			func() (any, error) { return customers.Get(ctx, id) },
			func() error { return customers.Delete(ctx, id) })
	case "produtos":
		return dispatch(ctx, action, id,
			func() (any, error) { return products.List(ctx) },
			func() (any, error) { return products.Get(ctx, id) },
			func() error { return products.Delete(ctx, id) })
	case "categorias":
		return dispatch(ctx, action, id,
			func() (any, error) { return categories.List(ctx) },
			func() (any, error) { return categories.Get(ctx, id) },
			func() error { return categories.Delete(ctx, id) })
	case "pedidos":
		return dispatch(ctx, action, id,
			func() (any, error) { return orders.List(ctx) },
			func() (any, error) { return orders.Get(ctx, id) },
			func() error { return orders.Delete(ctx, id) })
	}

	return fmt.Errorf("unknown entity %q\n%s", entity, usage)
}

func dispatch(_ context.Context, action string, id int64, list, get func() (any, error), del func() error) error {
	switch action {
	case "list":
		result, err := list()
		if err != nil {
			return err
		}

		return printJSON(result)
	case "get":
		result, err := get()
		if err != nil {
			return err
		}

		return printJSON(result)
	case "delete":
		if err := del(); err != nil {
			return err
		}

		slog.Info("deleted", slog.Int64("id", id))

		return nil
	}

	return fmt.Errorf("unknown action %q\n%s", action, usage)
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(encoded))

	return nil
}
