package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/ascendlabs/coach-roadmap-service/config"
	"github.com/ascendlabs/coach-roadmap-service/endpoints"
	"github.com/ascendlabs/coach-roadmap-service/internal/customizer"
	"github.com/ascendlabs/coach-roadmap-service/internal/entitlement"
	"github.com/ascendlabs/coach-roadmap-service/internal/generation"
	"github.com/ascendlabs/coach-roadmap-service/internal/profile"
	"github.com/ascendlabs/coach-roadmap-service/internal/subscription"
	"github.com/ascendlabs/coach-roadmap-service/middleware"
	"github.com/ascendlabs/coach-roadmap-service/utils"
)

const ServiceName = "coach-roadmap-service"

var (
	version   string
	branch    string
	commit    string
	buildDate string
)

// RedisClient is the shared connection used by the HTTP handlers and the
// health loop.
var RedisClient *redis.Client

func main() {
	// Handle version/help commands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			utils.SetVersion(version, branch, commit, buildDate)
			fmt.Println(utils.GetVersion().Str)
			os.Exit(0)
		case "help", "--help", "-h":
			fmt.Println("Coach Roadmap Service")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  coach-roadmap-service              Start the service")
			fmt.Println("  coach-roadmap-service version      Display version information")
			fmt.Println("  coach-roadmap-service -list        List all profile IDs")
			fmt.Println("  coach-roadmap-service -show <id>   Print one profile as JSON")
			os.Exit(0)
		}
	}

	listCmd := flag.Bool("list", false, "List all profile IDs")
	showCmd := flag.Bool("show", false, "Print one profile as JSON")
	flag.Parse()

	utils.SetVersion(version, branch, commit, buildDate)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Invalid configuration: %v", err)
	}

	if err := initializeRedis(cfg); err != nil {
		log.Fatalf("FATAL: Failed to initialize Redis: %v", err)
	}

	if *listCmd {
		if err := ListProfiles(); err != nil {
			log.Fatalf("List operation failed: %v", err)
		}
		return
	}
	if *showCmd {
		if flag.NArg() == 0 {
			fmt.Println("Usage: coach-roadmap-service -show <user-id>")
			os.Exit(1)
		}
		if err := ShowProfile(flag.Arg(0)); err != nil {
			log.Fatalf("Show operation failed: %v", err)
		}
		return
	}

	var verifier *middleware.Verifier
	if cfg.Auth.Disabled {
		log.Println("WARNING: Auth is disabled, requests run as local-dev")
	} else {
		verifier, err = middleware.NewVerifier(cfg.Auth.Issuer, cfg.Auth.Audience)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize JWT verifier: %v", err)
		}
	}

	profiles := profile.NewStore(RedisClient)

	var billing *subscription.StripeSource
	var source subscription.Source = &subscription.Static{}
	if cfg.Billing.StripeSecretKey != "" {
		billing = subscription.NewStripeSource(cfg.Billing.StripeSecretKey, cfg.Billing.PriceIDProMonthly, cfg.Billing.FrontendURL)
		source = billing
	} else {
		log.Println("WARNING: STRIPE_SECRET_KEY not set, billing endpoints disabled")
	}

	gate := entitlement.NewGate(profiles, source, cfg.FreeCustomizationLimit)
	generator := generation.NewClient(cfg.Hub.URL, cfg.Hub.Model)
	cust := customizer.New(generator)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		log.Println("Core Logic: Starting...")
		if err := RunCoreLogic(ctx); err != nil {
			log.Printf("Core Logic Error: %v", err)
			cancel()
		}
		log.Println("Core Logic: Stopped")
	}()

	router := mux.NewRouter()
	auth := middleware.Auth(verifier)

	// /service is public (for health checks and reachability probes)
	router.HandleFunc("/service", endpoints.ServiceHandler)
	router.HandleFunc("/options", endpoints.OptionsHandler).Methods(http.MethodGet, http.MethodOptions)

	router.HandleFunc("/profile", auth(endpoints.ProfileHandler(profiles)))
	router.HandleFunc("/roadmap", auth(endpoints.RoadmapHandler(profiles))).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/roadmap/tasks/{taskID}/toggle", auth(endpoints.ToggleTaskHandler(profiles))).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/roadmap/customize", auth(endpoints.CustomizeHandler(profiles, gate, cust, RedisClient))).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/entitlement", auth(endpoints.EntitlementHandler(gate))).Methods(http.MethodGet, http.MethodOptions)

	if billing != nil {
		router.HandleFunc("/billing/checkout", auth(endpoints.CheckoutHandler(profiles, billing))).Methods(http.MethodPost, http.MethodOptions)
		router.HandleFunc("/billing/restore", auth(endpoints.RestoreHandler(profiles, billing, gate, RedisClient))).Methods(http.MethodPost, http.MethodOptions)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      middleware.Cors(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // customization waits on sequential model calls
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Starting %s on :%d\n", ServiceName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server crashed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down service...")

	utils.SetHealthStatus("SHUTTING_DOWN", "Service is shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	if err := RedisClient.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	log.Println("Service exited cleanly")
}

// initializeRedis connects the shared client and verifies the connection.
func initializeRedis(cfg *config.Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
