package main

import (
	"fmt"
	"log"
	"net/http"

	"acacia-lounge/internal/catalog"
	"acacia-lounge/internal/config"
	"acacia-lounge/internal/handlers"
	"acacia-lounge/internal/middleware"
	"acacia-lounge/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	// Import packages to ensure they're included in go.mod
	_ "github.com/a-h/templ"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Create session store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}

	// The menu is compiled in; there is no database behind the storefront
	menu := catalog.NewDefaultProvider()

	// Initialize services
	relayService := services.NewFormRelayService(services.FormRelayConfig{
		Endpoint: cfg.Relay.Endpoint,
		ReplyTo:  cfg.Relay.ReplyTo,
	})
	checkoutService := services.NewCheckoutService(relayService)
	invoiceService := services.NewInvoiceService()

	mpesaConfig := services.DefaultMpesaConfig()
	mpesaConfig.BusinessShortCode = cfg.Mpesa.BusinessShortCode
	mpesaConfig.PushDelay = cfg.Mpesa.PushDelay
	mpesaConfig.SuccessRate = cfg.Mpesa.SuccessRate
	mpesaService := services.NewMpesaService(mpesaConfig)

	airtelConfig := services.DefaultAirtelConfig()
	airtelConfig.ManualPayNumber = cfg.Airtel.ManualPayNumber
	airtelConfig.PushDelay = cfg.Airtel.PushDelay
	airtelConfig.SuccessRate = cfg.Airtel.SuccessRate
	airtelService := services.NewAirtelService(airtelConfig)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(menu, sessionStore)
	cartHandler := handlers.NewCartHandler(menu, sessionStore)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, invoiceService, menu, sessionStore)
	paymentHandler := handlers.NewPaymentHandler(mpesaService, airtelService, mpesaService)

	// Set up router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	r.Use(middleware.SecurityHeadersMiddleware)

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	// Public pages
	r.Get("/", catalogHandler.Home)
	r.Get("/menu", catalogHandler.Menu)
	r.Get("/search", catalogHandler.Search)

	// Cart
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.ViewCart)
		r.Get("/count", cartHandler.CartCount)
		r.Post("/add", cartHandler.AddToCart)
		r.Post("/update", cartHandler.UpdateCartItem)
		r.Post("/remove", cartHandler.RemoveCartItem)
		r.Post("/clear", cartHandler.ClearCart)
	})

	// Checkout and orders
	r.Post("/checkout", checkoutHandler.ProcessCheckout)
	r.Route("/orders/{id}", func(r chi.Router) {
		r.Get("/confirmation", checkoutHandler.Confirmation)
		r.Get("/invoice", checkoutHandler.Invoice)
	})

	// Simulated payment API
	r.Route("/api/payments", func(r chi.Router) {
		r.Post("/{provider}/push", paymentHandler.InitiatePush)
		r.Post("/mpesa/verify", paymentHandler.VerifyCode)
		r.Get("/mpesa/status/{transactionID}", paymentHandler.CheckStatus)
	})

	// Static assets
	fileServer := http.FileServer(http.Dir("web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Acacia Lounge storefront listening on http://%s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
