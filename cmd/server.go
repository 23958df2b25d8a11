package cmd

import (
	"errors"
	"fmt"
	"ipregistrar/internal/config"
	"ipregistrar/internal/core"
	"ipregistrar/internal/http/handler"
	"ipregistrar/internal/http/handler/middleware"
	"ipregistrar/internal/http/payload"
	"ipregistrar/internal/http/server"
	"ipregistrar/pkg/jwt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the registrar HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, serve, config.App.RequireAPI)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(a *app) error {
	jwtService := jwt.NewJWTService([]byte(a.config.API.JWTSecret), serviceName)
	auth := core.NewAuthenticator(a.logs, a.repo, jwtService)

	registrarHlr := handler.NewRegistrarHandler(
		a.logs,
		payload.Decoder{},
		auth,
		a.registrar)

	mux := http.NewServeMux()
	mux.HandleFunc(handler.Authenticate, registrarHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetTransactions, registrarHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetAssets, registrarHlr.HandleGetAssets)
	mux.HandleFunc(handler.GetAsset, registrarHlr.HandleGetAsset)
	mux.Handle(handler.CreateDerivative,
		middleware.NewAuthMiddleware(a.logs, auth).Authenticate(http.HandlerFunc(registrarHlr.HandleCreateDerivative)))

	hdlr := middleware.NewLoggingMiddleware(a.logs).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(a.logs, hdlr, a.config.API.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
