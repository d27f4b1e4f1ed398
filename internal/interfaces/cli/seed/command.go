package seed

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tag/internal/application/user/usecases"
	"tag/internal/infrastructure/auth"
	"tag/internal/infrastructure/config"
	"tag/internal/infrastructure/database"
	"tag/internal/infrastructure/repository"
	"tag/internal/shared/constants"
	"tag/internal/shared/logger"
)

var (
	env        string
	configPath string
	email      string
	password   string
	nom        string
	prenom     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed initial data",
		Long:  `Create the records a fresh installation needs before anyone can log in.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newAdminCommand())
	return cmd
}

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an administrator account",
		Long:  `Create an administrator account. The password is read from the terminal when --password is omitted.`,
		RunE:  runAdmin,
	}

	cmd.Flags().StringVar(&email, "email", "", "Administrator email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Administrator password")
	cmd.Flags().StringVar(&nom, "nom", "Administrateur", "Last name")
	cmd.Flags().StringVar(&prenom, "prenom", "TAG", "First name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if password == "" {
		password, err = readPassword()
		if err != nil {
			return err
		}
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	uc := usecases.NewBootstrapAdminUseCase(
		repository.NewUserRepository(database.Get(), log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	admin, err := uc.Execute(ctx, usecases.BootstrapAdminCommand{
		Nom:      nom,
		Prenom:   prenom,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	fmt.Printf("Administrator %s created (id %d)\n", admin.Email, admin.ID)
	return nil
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--password is required when stdin is not a terminal")
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return strings.TrimRight(string(first), "\r\n"), nil
}
