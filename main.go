package main

import (
	"log"
	"net/http"
	"os"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/cmd"
	"github.com/brightifybd/go-storefront/app/configs"
	"github.com/brightifybd/go-storefront/app/routes"
	"github.com/brightifybd/go-storefront/app/services"
	"github.com/brightifybd/go-storefront/app/store"
	appsessions "github.com/brightifybd/go-storefront/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		log.Fatal("Session keys failed:", err)
	}

	kv := configs.OpenStore(env)

	comparer := auth.PlaintextComparer{}
	st := store.New(kv, comparer)
	log.Println("✅ Domain store loaded.")

	notifier := services.NewFormRelayNotifier(env.FormRelayURL)

	deps := routes.Deps{
		Render:    render.New(),
		Store:     st,
		Validator: validator.New(),
		Gate:      auth.NewGate(comparer),
		Checkout:  services.NewCheckoutService(st, notifier),
		Forms:     services.NewFormsService(st, notifier),
		Shopper:   appsessions.NewCookieShopperStore(keys.AuthKey, keys.EncKey),
		Staff:     appsessions.NewCookieStaffStore(keys.AuthKey, keys.EncKey),
		CSRFKey:   keys.AuthKey,
		Secure:    env.AppEnv == "production",
	}
	log.Println("✅ Session stores initialized.")

	router := routes.NewRouter(deps)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}
}
