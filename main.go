package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	"storefront/database"
	"storefront/logger"
	"storefront/web"
	"storefront/web/service"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogger() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	initLogger()
	defer logger.CloseLogger()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close db err:", err)
		}
	}()

	server := web.NewServer(settings)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	if err := server.Stop(); err != nil {
		logger.Warning("stop server err:", err)
	}
}

func resetAdminPassword(password string) error {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		return err
	}
	defer database.CloseDB()

	userService := service.UserService{}
	if err := userService.ResetAdminPassword(password); err != nil {
		return err
	}
	fmt.Println("admin password updated")
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "storefront",
		Short: "Role-based e-commerce storefront panel",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var password string
	resetAdminCmd := &cobra.Command{
		Use:   "reset-admin",
		Short: "Reset the admin account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetAdminPassword(password)
		},
	}
	resetAdminCmd.Flags().StringVar(&password, "password", "", "new admin password (min 6 characters)")
	resetAdminCmd.MarkFlagRequired("password")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(resetAdminCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
