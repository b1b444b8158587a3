// cmd/storefront/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/Thangttq233/FYP2025-FE/internal/api"
	"github.com/Thangttq233/FYP2025-FE/internal/auth"
	"github.com/Thangttq233/FYP2025-FE/internal/cart"
	"github.com/Thangttq233/FYP2025-FE/internal/catalog"
	"github.com/Thangttq233/FYP2025-FE/internal/checkout"
	"github.com/Thangttq233/FYP2025-FE/internal/config"
	"github.com/Thangttq233/FYP2025-FE/internal/i18n"
	"github.com/Thangttq233/FYP2025-FE/internal/models"
	"github.com/Thangttq233/FYP2025-FE/internal/operator"
	"github.com/Thangttq233/FYP2025-FE/internal/orders"
	"github.com/Thangttq233/FYP2025-FE/internal/payment"
	"github.com/Thangttq233/FYP2025-FE/internal/session"
	"github.com/Thangttq233/FYP2025-FE/internal/variant"
)

type app struct {
	cfg      *config.Config
	sess     *session.Store
	auth     *auth.Service
	catalog  *catalog.Service
	carts    *cart.Synchronizer
	orders   *orders.Service
	payments *payment.Reconciler
	console  *operator.Console

	// A fresh orchestrator per checkout entry, mirroring one per page visit.
	checkoutFactory func() *checkout.Orchestrator
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Logger)

	sess := session.NewStore()
	sess.OnExpired(func() {
		// The CLI's equivalent of the forced navigation to the login view.
		fmt.Fprintln(os.Stderr, i18n.T(cfg.Locale, i18n.KeyErrorSessionExpiry))
	})

	client, err := api.NewClient(cfg.API, sess, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize API client")
	}

	a := &app{
		cfg:      cfg,
		sess:     sess,
		auth:     auth.NewService(client, sess, logger),
		catalog:  catalog.NewService(client, logger),
		carts:    cart.NewSynchronizer(client, logger),
		orders:   orders.NewService(client, logger),
		payments: payment.NewReconciler(client, logger),
		console:  operator.NewConsole(client, logger),
	}
	a.checkoutFactory = func() *checkout.Orchestrator {
		return checkout.NewOrchestrator(a.carts, client, logger, cfg.Locale)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	if command != "products" && command != "product" && command != "categories" && command != "help" {
		if err := a.login(ctx); err != nil {
			return err
		}
	}

	switch command {
	case "products":
		return a.cmdProducts(ctx, args)
	case "product":
		return a.cmdProduct(ctx, args)
	case "categories":
		return a.cmdCategories(ctx)
	case "cart":
		return a.cmdCart(ctx)
	case "cart-add":
		return a.cmdCartAdd(ctx, args)
	case "cart-update":
		return a.cmdCartUpdate(ctx, args)
	case "cart-remove":
		return a.cmdCartRemove(ctx, args)
	case "checkout":
		return a.cmdCheckout(ctx, args)
	case "orders":
		return a.cmdOrders(ctx)
	case "order":
		return a.cmdOrder(ctx, args)
	case "pay":
		return a.cmdPay(ctx, args)
	case "payment-return":
		return a.cmdPaymentReturn(ctx, args)
	case "admin-orders":
		return a.cmdAdminOrders(ctx)
	case "set-status":
		return a.cmdSetStatus(ctx, args)
	case "help":
		usage()
		return nil
	}
	usage()
	return fmt.Errorf("unknown command %q", command)
}

func (a *app) login(ctx context.Context) error {
	email := os.Getenv("STOREFRONT_EMAIL")
	password := os.Getenv("STOREFRONT_PASSWORD")
	if email == "" || password == "" {
		return errors.New("STOREFRONT_EMAIL and STOREFRONT_PASSWORD must be set")
	}
	_, err := a.auth.Login(ctx, email, password)
	return err
}

func (a *app) cmdProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	name := fs.String("name", "", "filter by product name")
	minPrice := fs.Float64("min", -1, "minimum price")
	maxPrice := fs.Float64("max", -1, "maximum price")
	categoryID := fs.String("category", "", "filter by category id")
	fs.Parse(args)

	filter := catalog.SearchFilter{Name: *name, CategoryID: *categoryID}
	if *minPrice >= 0 {
		filter.MinPrice = minPrice
	}
	if *maxPrice >= 0 {
		filter.MaxPrice = maxPrice
	}

	var (
		products []models.Product
		err      error
	)
	if filter.Name == "" && filter.MinPrice == nil && filter.MaxPrice == nil && filter.CategoryID == "" {
		products, err = a.catalog.Products(ctx)
	} else {
		products, err = a.catalog.Search(ctx, filter)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVARIANTS")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%d\n", p.ID, p.Name, len(p.Variants))
	}
	return w.Flush()
}

func (a *app) cmdProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: product <id> [color] [size]")
	}
	product, err := a.catalog.Product(ctx, args[0])
	if err != nil {
		return err
	}

	sel := variant.Selection{}
	if len(args) > 1 {
		sel.Color = args[1]
	}
	if len(args) > 2 {
		sel.Size = args[2]
	}

	res := variant.Resolve(product.Variants, sel)
	fmt.Printf("%s\n%s\n", product.Name, product.Description)
	fmt.Println("Colors:", variant.Colors(product.Variants))
	fmt.Println("Sizes:", variant.Sizes(product.Variants))
	if res.Variant == nil {
		fmt.Println("No variant matches the selection.")
		return nil
	}
	if res.SizeReassigned {
		fmt.Println("Requested size is not available in this color; size was reassigned.")
	}
	fmt.Printf("Selected: %s / %s  %.0f  (stock %d)  variant=%s\n",
		res.Variant.Color, res.Variant.Size, res.Variant.Price, res.Variant.StockQuantity, res.Variant.ID)
	return nil
}

func (a *app) cmdCategories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
	}
	return w.Flush()
}

func (a *app) cmdCart(ctx context.Context) error {
	current, err := a.carts.Refresh(ctx)
	if err != nil {
		return err
	}
	printCart(current)
	return nil
}

func (a *app) cmdCartAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: cart-add <variant-id> <quantity>")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}
	current, err := a.carts.AddItem(ctx, args[0], qty)
	if err != nil {
		return err
	}
	printCart(current)
	return nil
}

func (a *app) cmdCartUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: cart-update <cart-item-id> <quantity>")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity %q", args[1])
	}
	current, err := a.carts.UpdateItem(ctx, args[0], qty)
	if err != nil {
		return err
	}
	printCart(current)
	return nil
}

func (a *app) cmdCartRemove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cart-remove <cart-item-id>")
	}
	current, err := a.carts.RemoveItem(ctx, args[0])
	if err != nil {
		return err
	}
	printCart(current)
	return nil
}

func (a *app) cmdCheckout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	address := fs.String("address", "", "shipping address")
	phone := fs.String("phone", "", "phone number")
	notes := fs.String("notes", "", "customer notes")
	fs.Parse(args)

	orchestrator := a.checkoutFactory()
	result, err := orchestrator.Load(ctx)
	if err != nil {
		return err
	}
	if result.State == checkout.StateRedirectToCart {
		fmt.Println("Cart is empty; nothing to check out.")
		return nil
	}

	result, err = orchestrator.Submit(ctx, checkout.Form{
		ShippingAddress: *address,
		PhoneNumber:     *phone,
		CustomerNotes:   *notes,
	})
	if err != nil {
		return err
	}
	if len(result.FieldErrors) > 0 {
		for field, msg := range result.FieldErrors {
			fmt.Printf("%s: %s\n", field, msg)
		}
		return errors.New("checkout form is incomplete")
	}
	if result.State == checkout.StateFailed {
		return errors.New(result.Reason)
	}
	fmt.Println("Order created:", result.OrderID)
	return nil
}

func (a *app) cmdOrders(ctx context.Context) error {
	list, err := a.orders.MyOrders(ctx)
	if err != nil {
		return err
	}
	printOrders(list, a.cfg.Locale)
	return nil
}

func (a *app) cmdOrder(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: order <id>")
	}
	order, err := a.orders.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printOrder(order, a.cfg.Locale)
	return nil
}

func (a *app) cmdPay(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: pay <order-id>")
	}
	order, err := a.orders.Get(ctx, args[0])
	if err != nil {
		return err
	}
	paymentURL, err := a.payments.RequestPaymentURL(ctx, order)
	if errors.Is(err, payment.ErrNotPayable) {
		fmt.Printf("Order is %s; no payment needed.\n", order.PaymentStatus.Label(a.cfg.Locale))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("Open this URL to pay:", paymentURL)
	return nil
}

func (a *app) cmdPaymentReturn(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: payment-return <return-url>")
	}
	parsed, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid return URL: %w", err)
	}

	params := payment.ParseReturn(parsed.Query())
	switch params.Outcome() {
	case payment.OutcomeSuccess:
		fmt.Println(i18n.T(a.cfg.Locale, i18n.KeyPaymentReturnSuccess))
	case payment.OutcomeFailed:
		fmt.Println(i18n.T(a.cfg.Locale, i18n.KeyPaymentReturnFailed))
	default:
		fmt.Println(i18n.T(a.cfg.Locale, i18n.KeyPaymentReturnUnknown))
	}

	sent, err := a.payments.Reconcile(ctx, params)
	if err != nil {
		return err
	}
	if !sent {
		return nil
	}

	// The banner above is only a hint; the settled state comes from the server.
	order, err := a.orders.Get(ctx, params.OrderID)
	if err != nil {
		return err
	}
	fmt.Println("Payment status:", order.PaymentStatus.Label(a.cfg.Locale))
	return nil
}

func (a *app) cmdAdminOrders(ctx context.Context) error {
	list, err := a.console.Refresh(ctx)
	if err != nil {
		return err
	}
	printOrders(list, a.cfg.Locale)
	return nil
}

func (a *app) cmdSetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set-status <order-id> <status>")
	}
	status, err := models.ParseOrderStatus(args[1])
	if err != nil {
		return err
	}
	list, err := a.console.UpdateStatus(ctx, args[0], status)
	if errors.Is(err, operator.ErrNoopTransition) {
		fmt.Println("Order already has that status; nothing to do.")
		return nil
	}
	if err != nil {
		return err
	}
	printOrders(list, a.cfg.Locale)
	return nil
}

func printCart(c *models.Cart) {
	if c.Empty() {
		fmt.Println("Cart is empty.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tPRODUCT\tCOLOR/SIZE\tQTY\tPRICE")
	for _, item := range c.Items {
		fmt.Fprintf(w, "%s\t%s\t%s/%s\t%d\t%.0f\n",
			item.ID, item.ProductName, item.ProductVariantColor, item.ProductVariantSize,
			item.Quantity, item.ProductVariantPrice)
	}
	w.Flush()
	fmt.Printf("Total: %.0f\n", c.TotalCartPrice)
}

func printOrders(list []models.Order, lang string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTOTAL\tSTATUS\tPAYMENT")
	for _, o := range list {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%s\n",
			o.ID, o.OrderDate.Format("2006-01-02 15:04"), o.TotalPrice,
			o.Status.Label(lang), o.PaymentStatus.Label(lang))
	}
	w.Flush()
}

func printOrder(o *models.Order, lang string) {
	fmt.Printf("Order %s  %s\n", o.ID, o.OrderDate.Format("2006-01-02 15:04"))
	fmt.Printf("Status: %s  Payment: %s\n", o.Status.Label(lang), o.PaymentStatus.Label(lang))
	fmt.Printf("Ship to: %s (%s)\n", o.ShippingAddress, o.PhoneNumber)
	for _, item := range o.Items {
		fmt.Printf("  %s %s/%s x%d @ %.0f\n", item.ProductName, item.Color, item.Size, item.Quantity, item.UnitPrice)
	}
	fmt.Printf("Total: %.0f\n", o.TotalPrice)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: storefront <command> [args]

Commands:
  products [-name N] [-min P] [-max P] [-category ID]
  product <id> [color] [size]
  categories
  cart | cart-add <variant> <qty> | cart-update <item> <qty> | cart-remove <item>
  checkout -address A -phone P [-notes N]
  orders | order <id>
  pay <order-id> | payment-return <return-url>
  admin-orders | set-status <order-id> <status>`)
}
