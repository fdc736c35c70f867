package main

import (
	"net/http"
	"os"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/handlers"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "crowdfunding-payments.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg)

	log.Info("Starting crowdfunding-payments.api service", log.Data{"bind_addr": cfg.BindAddr, "paypal_env": cfg.PaypalEnv})
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting crowdfunding-payments.api service")
}
